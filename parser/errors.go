/*
File    : jackc/parser/errors.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package parser

import "fmt"

// CursorError reports an attempt to read past the end of the token
// stream, or to read before the first call to Advance. The parser never
// recovers from one: it is always a bug in the production that triggered
// it, not a malformed-input condition (ParseError covers that).
type CursorError struct {
	Msg string
}

func (e *CursorError) Error() string {
	return fmt.Sprintf("cursor error: %s", e.Msg)
}

// ParseError reports a grammar violation: the token under the cursor does
// not match what the current production requires. There is no error
// recovery; the parser aborts the file it was parsing and the error
// propagates to the driver.
type ParseError struct {
	Expected string
	Got      string
	Line     int
	Col      int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s, got %s", e.Line, e.Col, e.Expected, e.Got)
}
