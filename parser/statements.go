/*
File    : jackc/parser/statements.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)
*/
package parser

import "github.com/rajatverma27/jackc/lexer"

// statements → statement*
func (p *Parser) statements() error {
	p.e.Open("statements")
	defer p.e.Close("statements")

	for p.atStatementKeyword() {
		if err := p.statement(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) atStatementKeyword() bool {
	return p.atKeyword("let") || p.atKeyword("if") || p.atKeyword("while") ||
		p.atKeyword("do") || p.atKeyword("return")
}

// statement → letStatement | ifStatement | whileStatement
//
//	| doStatement | returnStatement
//
// Not wrapped: dispatches to whichever production matches the current
// keyword, which opens its own tag.
func (p *Parser) statement() error {
	switch {
	case p.atKeyword("let"):
		return p.letStatement()
	case p.atKeyword("if"):
		return p.ifStatement()
	case p.atKeyword("while"):
		return p.whileStatement()
	case p.atKeyword("do"):
		return p.doStatement()
	default:
		return p.returnStatement()
	}
}

// letStatement → 'let' identifier ('[' expression ']')? '=' expression ';'
func (p *Parser) letStatement() error {
	p.e.Open("letStatement")
	defer p.e.Close("letStatement")

	if err := p.expectKeyword("let"); err != nil {
		return err
	}
	if err := p.expectIdentifier(); err != nil {
		return err
	}
	if p.atSymbol("[") {
		if err := p.expectSymbol("["); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
		if err := p.expectSymbol("]"); err != nil {
			return err
		}
	}
	if err := p.expectSymbol("="); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	return p.expectSymbol(";")
}

// ifStatement → 'if' '(' expression ')' '{' statements '}'
//
//	('else' '{' statements '}')?
func (p *Parser) ifStatement() error {
	p.e.Open("ifStatement")
	defer p.e.Close("ifStatement")

	if err := p.expectKeyword("if"); err != nil {
		return err
	}
	if err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.expectSymbol(")"); err != nil {
		return err
	}
	if err := p.expectSymbol("{"); err != nil {
		return err
	}
	if err := p.statements(); err != nil {
		return err
	}
	if err := p.expectSymbol("}"); err != nil {
		return err
	}

	if p.atKeyword("else") {
		if err := p.expectKeyword("else"); err != nil {
			return err
		}
		if err := p.expectSymbol("{"); err != nil {
			return err
		}
		if err := p.statements(); err != nil {
			return err
		}
		if err := p.expectSymbol("}"); err != nil {
			return err
		}
	}
	return nil
}

// whileStatement → 'while' '(' expression ')' '{' statements '}'
func (p *Parser) whileStatement() error {
	p.e.Open("whileStatement")
	defer p.e.Close("whileStatement")

	if err := p.expectKeyword("while"); err != nil {
		return err
	}
	if err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.expectSymbol(")"); err != nil {
		return err
	}
	if err := p.expectSymbol("{"); err != nil {
		return err
	}
	if err := p.statements(); err != nil {
		return err
	}
	return p.expectSymbol("}")
}

// doStatement → 'do' subroutineCall ';'
func (p *Parser) doStatement() error {
	p.e.Open("doStatement")
	defer p.e.Close("doStatement")

	if err := p.expectKeyword("do"); err != nil {
		return err
	}
	if err := p.subroutineCall(); err != nil {
		return err
	}
	return p.expectSymbol(";")
}

// returnStatement → 'return' expression? ';'
func (p *Parser) returnStatement() error {
	p.e.Open("returnStatement")
	defer p.e.Close("returnStatement")

	if err := p.expectKeyword("return"); err != nil {
		return err
	}
	if !p.atSymbol(";") {
		if err := p.expression(); err != nil {
			return err
		}
	}
	return p.expectSymbol(";")
}

// subroutineCall → identifier '(' expressionList ')'
//
//	| identifier '.' identifier '(' expressionList ')'
//
// Not wrapped: its tokens are emitted directly into the enclosing
// doStatement or term.
func (p *Parser) subroutineCall() error {
	if err := p.expectIdentifier(); err != nil {
		return err
	}
	if p.atSymbol(".") {
		if err := p.expectSymbol("."); err != nil {
			return err
		}
		if err := p.expectIdentifier(); err != nil {
			return err
		}
	}
	if err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.expressionList(); err != nil {
		return err
	}
	return p.expectSymbol(")")
}

// expressionList → (expression (',' expression)*)?
func (p *Parser) expressionList() error {
	p.e.Open("expressionList")
	defer p.e.Close("expressionList")

	if p.atSymbol(")") {
		return nil
	}
	if err := p.expression(); err != nil {
		return err
	}
	for p.atSymbol(",") {
		if err := p.expectSymbol(","); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
	}
	return nil
}

// isOperator reports whether the current token is a binary operator
// symbol.
func (p *Parser) isOperator() bool {
	return p.c.Kind() == lexer.Symbol && lexer.Operators[p.c.Text()[0]]
}
