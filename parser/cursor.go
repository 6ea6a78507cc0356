/*
File    : jackc/parser/cursor.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package parser

import "github.com/rajatverma27/jackc/lexer"

// Cursor is a one-token-lookahead view over a token stream. It starts
// with no current token loaded; the first Advance call loads tokens[0].
// Every parser production must enter and leave with a current token
// loaded, with one exception: the Advance that consumes a file's final
// token moves the cursor past the end on purpose, since nothing reads
// through it afterward. A further Advance from that exhausted state is
// always a parser bug and fails with CursorError.
//
// Reading Kind/Text/PeekKind/PeekText with no current token loaded is
// the same kind of bug. Rather than panic (this grammar never recovers
// from an error by unwinding a panic, it returns one), the cursor
// records the failure the first time it happens and keeps returning
// zero values afterward, so every existing boolean "at..." check still
// sees no match and falls through to the errorf call that actually
// reports it — at which point Err() supplies the real CursorError
// instead of a ParseError against a fabricated zero-value token.
type Cursor struct {
	tokens []lexer.Token
	pos    int // index of the current token; -1 means none loaded yet
	err    *CursorError
}

// NewCursor wraps a token stream for parsing.
func NewCursor(tokens []lexer.Token) *Cursor {
	return &Cursor{tokens: tokens, pos: -1}
}

// HasMore reports whether there is a token beyond the current one.
func (c *Cursor) HasMore() bool {
	return c.pos+1 < len(c.tokens)
}

// Advance loads the next token as current. It succeeds one token past
// the last valid index (the state that marks end of input); calling it
// again from that exhausted state is the only failure case.
func (c *Cursor) Advance() error {
	if c.pos >= len(c.tokens) {
		return c.fail("advance past end of token stream")
	}
	c.pos++
	return nil
}

// AtEnd reports whether the cursor has been advanced past the final
// token and has no current token left to read.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.tokens)
}

// Err returns the CursorError recorded the first time an accessor was
// asked for a token that doesn't exist, or nil if that has never
// happened.
func (c *Cursor) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

// fail records the first CursorError seen and always returns it, so a
// cascade of further failed reads (common once one accessor comes up
// empty mid-production) doesn't overwrite the original cause.
func (c *Cursor) fail(msg string) *CursorError {
	if c.err == nil {
		c.err = &CursorError{Msg: msg}
	}
	return c.err
}

// current returns the current token. If none is loaded — before the
// first Advance, or past the end — it fails with CursorError and
// returns the zero Token.
func (c *Cursor) current() (lexer.Token, error) {
	if c.pos < 0 {
		return lexer.Token{}, c.fail("read before first Advance")
	}
	if c.AtEnd() {
		return lexer.Token{}, c.fail("read past end of token stream")
	}
	return c.tokens[c.pos], nil
}

// Kind returns the current token's kind, or Invalid if the cursor has
// no current token (see Err).
func (c *Cursor) Kind() lexer.Kind {
	t, _ := c.current()
	return t.Kind
}

// Text returns the current token's text, or "" if the cursor has no
// current token (see Err).
func (c *Cursor) Text() string {
	t, _ := c.current()
	return t.Text
}

// Token returns the current token in full, for error reporting.
func (c *Cursor) Token() lexer.Token {
	t, _ := c.current()
	return t
}

// PeekKind returns the kind of the token after the current one, or
// Invalid if there isn't one or the cursor has no current token.
func (c *Cursor) PeekKind() lexer.Kind {
	if _, err := c.current(); err != nil {
		return lexer.Invalid
	}
	if !c.HasMore() {
		return lexer.Invalid
	}
	return c.tokens[c.pos+1].Kind
}

// PeekText returns the text of the token after the current one, or ""
// if there isn't one or the cursor has no current token.
func (c *Cursor) PeekText() string {
	if _, err := c.current(); err != nil {
		return ""
	}
	if !c.HasMore() {
		return ""
	}
	return c.tokens[c.pos+1].Text
}
