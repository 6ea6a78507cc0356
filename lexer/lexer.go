/*
File    : jackc/lexer/lexer.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)

Package lexer implements the front end's first two stages: stripping
comments from Jack source (Clean, in cleaner.go) and classifying what's
left into a flat token sequence (Tokenize, below).

Tokenize scans each cleaned line left-to-right with a three-state machine
(none / in-word / in-string), exactly the table in spec.md §4.B. It never
looks across line boundaries except to report that a string was left open.
*/
package lexer

// lineState is the per-character state while scanning one cleaned line.
type lineState int

const (
	none lineState = iota
	inWord
	inString
)

// Tokenize runs the Source Cleaner and then the lexer over src, returning
// the ordered token sequence or the first LexError encountered (a string
// literal not terminated on its line; any other character either is
// skipped as whitespace or becomes part of a symbol, string or word).
func Tokenize(src string) ([]Token, error) {
	var tokens []Token

	for _, line := range Clean(src) {
		lineTokens, err := tokenizeLine(line)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
	}
	return tokens, nil
}

// tokenizeLine applies the state table in spec.md §4.B to a single cleaned
// line, emitting tokens as it goes.
func tokenizeLine(line Line) ([]Token, error) {
	text := line.Text
	var tokens []Token
	state := none
	start := 0

	emitWord := func(end int) {
		tokens = append(tokens, classify(text[start:end], line.Num, start+1))
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch state {
		case none:
			switch {
			case c == ' ' || c == '\t':
				// skip
			case c == '"':
				state = inString
				start = i
			case Symbols[c]:
				tokens = append(tokens, Token{Kind: Symbol, Text: string(c), Line: line.Num, Col: i + 1})
			default:
				state = inWord
				start = i
			}
		case inWord:
			switch {
			case c == ' ' || c == '\t':
				emitWord(i)
				state = none
			case Symbols[c]:
				emitWord(i)
				tokens = append(tokens, Token{Kind: Symbol, Text: string(c), Line: line.Num, Col: i + 1})
				state = none
			case c == '"':
				emitWord(i)
				state = inString
				start = i
			default:
				// continue accumulating the word
			}
		case inString:
			if c == '"' {
				tokens = append(tokens, Token{
					Kind: StringConst,
					Text: text[start+1 : i],
					Line: line.Num,
					Col:  start + 1,
				})
				state = none
			}
			// any other character, including whitespace, stays inside the string
		}
	}

	switch state {
	case inWord:
		emitWord(len(text))
	case inString:
		return nil, newLexError(line.Num, start+1, "string literal not terminated on its line")
	}

	return tokens, nil
}
