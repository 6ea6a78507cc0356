/*
File    : jackc/parser/expressions.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package parser

import "github.com/rajatverma27/jackc/lexer"

// expression → term (op term)*
//
// No precedence is applied; each op/term pair is emitted flat and
// left-to-right, matching the grammar exactly.
func (p *Parser) expression() error {
	p.e.Open("expression")
	defer p.e.Close("expression")

	if err := p.term(); err != nil {
		return err
	}
	for p.isOperator() {
		if err := p.op(); err != nil {
			return err
		}
		if err := p.term(); err != nil {
			return err
		}
	}
	return nil
}

// term → intConst | stringConst | keywordConst | varName
//
//	| varName '[' expression ']'
//	| subroutineCall
//	| '(' expression ')'
//	| unaryOp term
//
// Disambiguation for an identifier current token peeks one token ahead:
// '[' means array access, '(' or '.' means a subroutine call, anything
// else means a plain variable reference.
func (p *Parser) term() error {
	p.e.Open("term")
	defer p.e.Close("term")

	switch {
	case p.c.Kind() == lexer.IntConst:
		p.e.Leaf("integerConstant", lexer.DecimalText(p.c.Text()))
		return p.c.Advance()

	case p.c.Kind() == lexer.StringConst:
		p.e.Leaf("stringConstant", p.c.Text())
		return p.c.Advance()

	case p.atKeywordConst():
		return p.keywordConst()

	case p.c.Kind() == lexer.Identifier:
		switch p.c.PeekText() {
		case "[":
			if err := p.expectIdentifier(); err != nil {
				return err
			}
			if err := p.expectSymbol("["); err != nil {
				return err
			}
			if err := p.expression(); err != nil {
				return err
			}
			return p.expectSymbol("]")
		case "(", ".":
			return p.subroutineCall()
		default:
			return p.expectIdentifier()
		}

	case p.atSymbol("("):
		if err := p.expectSymbol("("); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
		return p.expectSymbol(")")

	case p.atUnaryOp():
		if err := p.unaryOp(); err != nil {
			return err
		}
		return p.term()

	default:
		return p.errorf("term", p.describe())
	}
}

// op → '+' | '-' | '*' | '/' | '&' | '|' | '<' | '>' | '='
// Not wrapped: the single symbol is emitted directly into expression.
func (p *Parser) op() error {
	sym := p.c.Text()
	return p.expectSymbol(sym)
}

func (p *Parser) atUnaryOp() bool {
	return p.atSymbol("-") || p.atSymbol("~")
}

// unaryOp → '-' | '~'
// Not wrapped: the single symbol is emitted directly into the term that
// follows it.
func (p *Parser) unaryOp() error {
	sym := p.c.Text()
	return p.expectSymbol(sym)
}

func (p *Parser) atKeywordConst() bool {
	return p.atKeyword("true") || p.atKeyword("false") ||
		p.atKeyword("null") || p.atKeyword("this")
}

// keywordConst → 'true' | 'false' | 'null' | 'this'
// Not wrapped: the single keyword is emitted directly into term.
func (p *Parser) keywordConst() error {
	kw := p.c.Text()
	return p.expectKeyword(kw)
}
