/*
File    : jackc/driver/driver.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)

Package driver is the external-facing glue the front end needs but the
lexer, parser, and emitter don't: path resolution, file vs directory
dispatch, and the tokens-only/parse mode switch. Everything here is
collaborator-level (§6 of the design this front end follows) — no
grammar or tokenization logic lives in this package.
*/
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rajatverma27/jackc/lexer"
	"github.com/rajatverma27/jackc/parser"
	"github.com/rajatverma27/jackc/xmlw"
)

// Run processes path under opts. If path is a single file, it is processed
// as given; its extension is not checked. If path is a directory, every
// direct entry ending in .jack
// is processed (no recursion); a failure on one file is logged and does
// not stop the rest, but Run still reports that the overall run failed.
func Run(path string, opts Options, logf func(format string, a ...any)) error {
	info, err := os.Stat(path)
	if err != nil {
		return newIoError(path, err)
	}

	if !info.IsDir() {
		return processFile(path, opts)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return newIoError(path, err)
	}

	var failed bool
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jack") {
			continue
		}
		full := filepath.Join(path, entry.Name())
		if err := processFile(full, opts); err != nil {
			failed = true
			if logf != nil {
				logf("%s: %v", full, err)
			}
		}
	}
	if failed {
		return fmt.Errorf("one or more files in %s failed", path)
	}
	return nil
}

// processFile tokenizes (and, unless opts.TokensOnly, parses) one .jack
// file and writes its XML output to the sibling .xml path. Output is
// written to a temp file and renamed into place only on success, so a
// failing file never leaves a partial .xml behind.
func processFile(path string, opts Options) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return newIoError(path, err)
	}

	tokens, err := lexer.Tokenize(string(src))
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".xml"
	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".jackc-*.xml.tmp")
	if err != nil {
		return newIoError(outPath, err)
	}
	tmpPath := tmp.Name()

	writeErr := render(tmp, tokens, opts)
	closeErr := tmp.Close()

	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if writeErr != nil {
			return writeErr
		}
		return newIoError(outPath, closeErr)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return newIoError(outPath, err)
	}
	return nil
}

// render writes either the tokens-only wrapper or a full parse tree to w.
func render(w *os.File, tokens []lexer.Token, opts Options) error {
	e := xmlw.New(w)

	if opts.TokensOnly {
		emitTokens(e, tokens)
		return e.Flush()
	}

	p := parser.New(tokens, e)
	if err := p.ParseClass(); err != nil {
		return err
	}
	return e.Flush()
}

// emitTokens writes the flat <tokens>...</tokens> wrapper used by
// tokens-only mode: one leaf per token, same tag names and escaping the
// parser's leaves use.
func emitTokens(e *xmlw.Emitter, tokens []lexer.Token) {
	e.Open("tokens")
	defer e.Close("tokens")

	for _, tok := range tokens {
		text := tok.Text
		if tok.Kind == lexer.IntConst {
			text = lexer.DecimalText(text)
		}
		e.Leaf(leafTag(tok.Kind), text)
	}
}

func leafTag(k lexer.Kind) string {
	switch k {
	case lexer.Keyword:
		return "keyword"
	case lexer.Symbol:
		return "symbol"
	case lexer.IntConst:
		return "integerConstant"
	case lexer.StringConst:
		return "stringConstant"
	default:
		return "identifier"
	}
}
