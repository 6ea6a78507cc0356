/*
File    : jackc/parser/cursor_test.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rajatverma27/jackc/lexer"
)

func TestCursor_AccessorsBeforeFirstAdvanceReportCursorError(t *testing.T) {
	c := NewCursor([]lexer.Token{{Kind: lexer.Keyword, Text: "class"}})

	assert.Equal(t, lexer.Invalid, c.Kind())
	assert.Equal(t, "", c.Text())
	assert.Error(t, c.Err())

	var cursorErr *CursorError
	assert.ErrorAs(t, c.Err(), &cursorErr)
}

func TestCursor_AccessorsPastEndReportCursorError(t *testing.T) {
	c := NewCursor([]lexer.Token{{Kind: lexer.Keyword, Text: "class"}})
	assert.NoError(t, c.Advance())
	assert.NoError(t, c.Advance()) // consumes the only token, lands past end

	assert.Nil(t, c.Err())

	assert.Equal(t, lexer.Invalid, c.Kind())
	assert.Equal(t, "", c.Text())
	assert.Error(t, c.Err())

	var cursorErr *CursorError
	assert.ErrorAs(t, c.Err(), &cursorErr)
}

func TestCursor_PeekPastEndDoesNotFailWithCurrentTokenLoaded(t *testing.T) {
	c := NewCursor([]lexer.Token{{Kind: lexer.Keyword, Text: "class"}})
	assert.NoError(t, c.Advance())

	assert.False(t, c.HasMore())
	assert.Equal(t, lexer.Invalid, c.PeekKind())
	assert.Equal(t, "", c.PeekText())
	assert.NoError(t, c.Err(), "peeking past the last token with a valid current token is not a cursor bug")
}

func TestCursor_FurtherAdvancePastEndIsCursorError(t *testing.T) {
	c := NewCursor([]lexer.Token{{Kind: lexer.Keyword, Text: "class"}})
	assert.NoError(t, c.Advance())
	assert.NoError(t, c.Advance())

	err := c.Advance()
	var cursorErr *CursorError
	assert.ErrorAs(t, err, &cursorErr)
}
