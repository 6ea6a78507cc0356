/*
File    : jackc/xmlw/emitter_test.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package xmlw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitter_NestedTagsIndentByTwoSpaces(t *testing.T) {
	var buf strings.Builder
	e := New(&buf)

	e.Open("class")
	e.Leaf("keyword", "class")
	e.Open("subroutineDec")
	e.Leaf("keyword", "function")
	e.Close("subroutineDec")
	e.Close("class")
	assert.NoError(t, e.Flush())

	want := "<class>\n" +
		"  <keyword>class</keyword>\n" +
		"  <subroutineDec>\n" +
		"    <keyword>function</keyword>\n" +
		"  </subroutineDec>\n" +
		"</class>\n"
	assert.Equal(t, want, buf.String())
}

func TestEmitter_LeafEscapesReservedCharacters(t *testing.T) {
	var buf strings.Builder
	e := New(&buf)

	e.Leaf("symbol", "<")
	e.Leaf("symbol", ">")
	e.Leaf("symbol", "&")
	e.Leaf("stringConstant", `say "hi" & 'bye'`)
	assert.NoError(t, e.Flush())

	want := "<symbol>&lt;</symbol>\n" +
		"<symbol>&gt;</symbol>\n" +
		"<symbol>&amp;</symbol>\n" +
		"<stringConstant>say &quot;hi&quot; &amp; &apos;bye&apos;</stringConstant>\n"
	assert.Equal(t, want, buf.String())
}

func TestEmitter_DeferredCloseMatchesOpen(t *testing.T) {
	var buf strings.Builder
	e := New(&buf)

	func() {
		e.Open("expressionList")
		defer e.Close("expressionList")
	}()
	assert.NoError(t, e.Flush())

	assert.Equal(t, "<expressionList>\n</expressionList>\n", buf.String())
}
