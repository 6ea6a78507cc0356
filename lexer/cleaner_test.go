/*
File    : jackc/lexer/cleaner_test.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_StripsLineComments(t *testing.T) {
	src := "let x = 1; // set x\nlet y = 2;"
	lines := Clean(src)

	assert.Len(t, lines, 2)
	assert.Equal(t, "let x = 1;", lines[0].Text)
	assert.Equal(t, 1, lines[0].Num)
	assert.Equal(t, "let y = 2;", lines[1].Text)
	assert.Equal(t, 2, lines[1].Num)
}

func TestClean_StripsBlockCommentAcrossLines(t *testing.T) {
	src := "let x = 1;\n/* a block\ncomment\nspanning lines */\nlet y = 2;"
	lines := Clean(src)

	assert.Len(t, lines, 2)
	assert.Equal(t, "let x = 1;", lines[0].Text)
	assert.Equal(t, "let y = 2;", lines[1].Text)
	assert.Equal(t, 5, lines[1].Num)
}

func TestClean_BlockCommentRemovedBeforeLineComment(t *testing.T) {
	src := "let x = 1; /* // nested-looking text */"
	lines := Clean(src)

	assert.Len(t, lines, 1)
	assert.Equal(t, "let x = 1;", lines[0].Text)
}

func TestClean_DropsBlankLines(t *testing.T) {
	src := "let x = 1;\n\n\nlet y = 2;"
	lines := Clean(src)

	assert.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Num)
	assert.Equal(t, 4, lines[1].Num)
}

func TestClean_EmptySource(t *testing.T) {
	assert.Empty(t, Clean(""))
	assert.Empty(t, Clean("   \n  \n"))
	assert.Empty(t, Clean("// only a comment"))
}
