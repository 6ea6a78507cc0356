/*
File    : jackc/parser/parser.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)

Package parser is the recursive-descent grammar for Jack class bodies. One
method per wrapped production in the grammar; each opens its own tag with
the emitter, defers the matching close, and leaves the cursor positioned
on the token immediately after its last consumed token.

Unwrapped helper productions (statement, subroutineCall, type, op,
unaryOp, keywordConst) are plain functions that emit leaves inline into
whatever wrapper is currently open; they never call Open/Close themselves.
*/
package parser

import (
	"github.com/rajatverma27/jackc/lexer"
	"github.com/rajatverma27/jackc/xmlw"
)

// Parser drives a Cursor and an Emitter together through the grammar.
type Parser struct {
	c *Cursor
	e *xmlw.Emitter
}

// New builds a Parser over tokens, writing its XML tree through e.
func New(tokens []lexer.Token, e *xmlw.Emitter) *Parser {
	return &Parser{c: NewCursor(tokens), e: e}
}

// ParseClass parses a whole class from the start of the token stream and
// returns a ParseError (or CursorError, if the grammar is violated in a
// way that drives the cursor past the end) on the first mismatch. On
// success it advances the cursor through every token in the class.
func (p *Parser) ParseClass() error {
	if err := p.c.Advance(); err != nil {
		return err
	}
	return p.class()
}

// expectKeyword checks that the current token is the keyword kw, emits
// it as a leaf, and advances.
func (p *Parser) expectKeyword(kw string) error {
	if p.c.Kind() != lexer.Keyword || p.c.Text() != kw {
		return p.errorf("keyword "+kw, p.describe())
	}
	p.e.Leaf("keyword", p.c.Text())
	return p.c.Advance()
}

// expectSymbol checks that the current token is the single-character
// symbol sym, emits it as a leaf, and advances.
func (p *Parser) expectSymbol(sym string) error {
	if p.c.Kind() != lexer.Symbol || p.c.Text() != sym {
		return p.errorf("symbol "+sym, p.describe())
	}
	p.e.Leaf("symbol", p.c.Text())
	return p.c.Advance()
}

// expectIdentifier checks that the current token is an identifier, emits
// it as a leaf, and advances.
func (p *Parser) expectIdentifier() error {
	if p.c.Kind() != lexer.Identifier {
		return p.errorf("identifier", p.describe())
	}
	p.e.Leaf("identifier", p.c.Text())
	return p.c.Advance()
}

// atKeyword reports whether the current token is the keyword kw.
func (p *Parser) atKeyword(kw string) bool {
	return p.c.Kind() == lexer.Keyword && p.c.Text() == kw
}

// atSymbol reports whether the current token is the single-character
// symbol sym.
func (p *Parser) atSymbol(sym string) bool {
	return p.c.Kind() == lexer.Symbol && p.c.Text() == sym
}

func (p *Parser) describe() string {
	t := p.c.Token()
	return t.Kind.String() + " " + t.Text
}

// errorf builds the error for a grammar mismatch. If the mismatch was
// actually caused by running out of tokens (the cursor has no current
// token to describe), it returns the cursor's CursorError instead of a
// ParseError against a fabricated zero-position token.
func (p *Parser) errorf(expected, got string) error {
	if err := p.c.Err(); err != nil {
		return err
	}
	t := p.c.Token()
	return &ParseError{Expected: expected, Got: got, Line: t.Line, Col: t.Col}
}

// class → 'class' identifier '{' classVarDec* subroutineDec* '}'
func (p *Parser) class() error {
	p.e.Open("class")
	defer p.e.Close("class")

	if err := p.expectKeyword("class"); err != nil {
		return err
	}
	if err := p.expectIdentifier(); err != nil {
		return err
	}
	if err := p.expectSymbol("{"); err != nil {
		return err
	}
	for p.atKeyword("static") || p.atKeyword("field") {
		if err := p.classVarDec(); err != nil {
			return err
		}
	}
	for p.atKeyword("constructor") || p.atKeyword("function") || p.atKeyword("method") {
		if err := p.subroutineDec(); err != nil {
			return err
		}
	}
	return p.expectSymbol("}")
}

// classVarDec → ('static'|'field') type identifier (',' identifier)* ';'
func (p *Parser) classVarDec() error {
	p.e.Open("classVarDec")
	defer p.e.Close("classVarDec")

	if p.atKeyword("static") {
		if err := p.expectKeyword("static"); err != nil {
			return err
		}
	} else {
		if err := p.expectKeyword("field"); err != nil {
			return err
		}
	}
	if err := p.typ(); err != nil {
		return err
	}
	if err := p.expectIdentifier(); err != nil {
		return err
	}
	for p.atSymbol(",") {
		if err := p.expectSymbol(","); err != nil {
			return err
		}
		if err := p.expectIdentifier(); err != nil {
			return err
		}
	}
	return p.expectSymbol(";")
}

// subroutineDec → ('constructor'|'function'|'method')
//
//	('void'|type) identifier '(' parameterList ')' subroutineBody
func (p *Parser) subroutineDec() error {
	p.e.Open("subroutineDec")
	defer p.e.Close("subroutineDec")

	switch {
	case p.atKeyword("constructor"):
		if err := p.expectKeyword("constructor"); err != nil {
			return err
		}
	case p.atKeyword("function"):
		if err := p.expectKeyword("function"); err != nil {
			return err
		}
	default:
		if err := p.expectKeyword("method"); err != nil {
			return err
		}
	}

	if p.atKeyword("void") {
		if err := p.expectKeyword("void"); err != nil {
			return err
		}
	} else {
		if err := p.typ(); err != nil {
			return err
		}
	}

	if err := p.expectIdentifier(); err != nil {
		return err
	}
	if err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.parameterList(); err != nil {
		return err
	}
	if err := p.expectSymbol(")"); err != nil {
		return err
	}
	return p.subroutineBody()
}

// parameterList → (type identifier (',' type identifier)*)?
func (p *Parser) parameterList() error {
	p.e.Open("parameterList")
	defer p.e.Close("parameterList")

	if p.atSymbol(")") {
		return nil
	}
	if err := p.typ(); err != nil {
		return err
	}
	if err := p.expectIdentifier(); err != nil {
		return err
	}
	for p.atSymbol(",") {
		if err := p.expectSymbol(","); err != nil {
			return err
		}
		if err := p.typ(); err != nil {
			return err
		}
		if err := p.expectIdentifier(); err != nil {
			return err
		}
	}
	return nil
}

// subroutineBody → '{' varDec* statements '}'
func (p *Parser) subroutineBody() error {
	p.e.Open("subroutineBody")
	defer p.e.Close("subroutineBody")

	if err := p.expectSymbol("{"); err != nil {
		return err
	}
	for p.atKeyword("var") {
		if err := p.varDec(); err != nil {
			return err
		}
	}
	if err := p.statements(); err != nil {
		return err
	}
	return p.expectSymbol("}")
}

// varDec → 'var' type identifier (',' identifier)* ';'
func (p *Parser) varDec() error {
	p.e.Open("varDec")
	defer p.e.Close("varDec")

	if err := p.expectKeyword("var"); err != nil {
		return err
	}
	if err := p.typ(); err != nil {
		return err
	}
	if err := p.expectIdentifier(); err != nil {
		return err
	}
	for p.atSymbol(",") {
		if err := p.expectSymbol(","); err != nil {
			return err
		}
		if err := p.expectIdentifier(); err != nil {
			return err
		}
	}
	return p.expectSymbol(";")
}

// type → 'int' | 'char' | 'boolean' | identifier
// Not wrapped: its single token is emitted directly into the caller's tag.
func (p *Parser) typ() error {
	switch {
	case p.atKeyword("int"):
		return p.expectKeyword("int")
	case p.atKeyword("char"):
		return p.expectKeyword("char")
	case p.atKeyword("boolean"):
		return p.expectKeyword("boolean")
	case p.c.Kind() == lexer.Identifier:
		return p.expectIdentifier()
	default:
		return p.errorf("type", p.describe())
	}
}
