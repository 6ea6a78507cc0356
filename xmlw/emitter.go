/*
File    : jackc/xmlw/emitter.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)

Package xmlw is the pretty-printed XML sink the parser writes its parse
tree into. It knows nothing about Jack grammar; it only tracks nesting
depth and escapes text the way spec.md §7 requires.
*/
package xmlw

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Emitter writes an indented XML tree to an underlying writer. Each Open
// must be matched by exactly one Close; callers typically write
//
//	e.Open("letStatement")
//	defer e.Close("letStatement")
//
// at the top of a parser production, which is this package's equivalent of
// the teacher's indent-around-children visitor pattern, done through
// structural tags instead of a fixed decorative format.
type Emitter struct {
	w     *bufio.Writer
	depth int
}

// New wraps w in an Emitter. Callers must call Flush when done to push any
// buffered output through.
func New(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// Open writes an opening tag on its own line and increases the indent
// level for everything written until the matching Close.
func (e *Emitter) Open(tag string) {
	e.writeIndented(fmt.Sprintf("<%s>", tag))
	e.depth++
}

// Close decreases the indent level and writes the matching closing tag.
// It does not verify tag nesting; the parser's recursive structure is
// what guarantees Open/Close pairs line up.
func (e *Emitter) Close(tag string) {
	e.depth--
	e.writeIndented(fmt.Sprintf("</%s>", tag))
}

// Leaf writes a single "<tag>text</tag>" line at the current indent
// level, escaping text per escape's rules. This is how every terminal
// token (keyword, symbol, identifier, integerConstant, stringConstant)
// reaches the tree.
func (e *Emitter) Leaf(tag, text string) {
	e.writeIndented(fmt.Sprintf("<%s>%s</%s>", tag, escape(text), tag))
}

// Flush pushes any buffered output to the underlying writer.
func (e *Emitter) Flush() error {
	return e.w.Flush()
}

func (e *Emitter) writeIndented(line string) {
	e.w.WriteString(strings.Repeat("  ", e.depth))
	e.w.WriteString(line)
	e.w.WriteByte('\n')
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape applies the five XML entity substitutions spec.md §7 names, and
// no others: Jack source text needs nothing fancier than that.
func escape(s string) string {
	return escaper.Replace(s)
}
