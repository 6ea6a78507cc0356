/*
File    : jackc/lexer/cleaner.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package lexer

import (
	"regexp"
	"strings"
)

// blockComment matches a non-nested /* ... */ span, dot matching newlines so
// a comment spanning multiple lines is removed as one unit.
var blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

// lineComment matches // to end of line, exclusive of the newline.
var lineComment = regexp.MustCompile(`//[^\n]*`)

// Line is one non-empty, comment-stripped, whitespace-trimmed source line,
// tagged with its 1-indexed position in the original file so later stages
// (LexError, Token.Line) can report a position a human can find.
type Line struct {
	Text string
	Num  int
}

// Clean strips comments from src and returns the non-empty, trimmed lines
// that remain. Block comments are removed before line comments (spec.md
// §4.A's ordering rule), so `/* // still a block */` is removed whole
// instead of leaving a stray `//`.
//
// Clean does not treat string literals as opaque: a literal containing //
// or /* is miscleaned. This mirrors the reference tokenizer's behavior and
// is a known limitation, not a bug to silently paper over here.
func Clean(src string) []Line {
	// A block comment is replaced with just the newlines it contained,
	// not deleted outright, so every surviving line keeps its original
	// 1-indexed position once src is split below. Deleting the match
	// whole would shift every following line's Num up by the comment's
	// line span.
	src = blockComment.ReplaceAllStringFunc(src, func(m string) string {
		return strings.Repeat("\n", strings.Count(m, "\n"))
	})
	src = lineComment.ReplaceAllString(src, "")

	rawLines := strings.Split(src, "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, l := range rawLines {
		l = strings.TrimRight(l, "\r")
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, Line{Text: l, Num: i + 1})
		}
	}
	return lines
}
