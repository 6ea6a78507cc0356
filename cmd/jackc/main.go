/*
File    : jackc/cmd/jackc/main.go
Author  : Rajat Verma
Contact : rajatverma27(@outlook.com)

Package main is the entry point for jackc, a standalone tokenizer and
syntax analyzer for the Jack language. It has two modes:
1. Batch mode: compile a file or directory given on the command line.
2. Interactive mode (default, no path given): a small readline-driven
   loop that repeatedly asks for a path to compile.
*/
package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rajatverma27/jackc/driver"
)

// VERSION is the current jackc release.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of jackc's author.
var AUTHOR = "rajatverma27(@outlook.com)"

// LICENSE specifies the software license (MIT License).
var LICENSE = "MIT"

// PROMPT is shown in interactive mode.
var PROMPT = "jackc >>> "

// LINE is a separator used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) <= 1 {
		runInteractive(os.Stdin, os.Stdout)
		return
	}

	args := os.Args[1:]
	tokensOnly := false
	var path string

	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "--token-test", "-t":
			tokensOnly = true
		default:
			path = arg
		}
	}

	if path == "" {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing input path\n")
		os.Exit(1)
	}

	if err := compile(path, tokensOnly); err != nil {
		redColor.Fprintf(os.Stderr, "[COMPILE ERROR] %v\n", err)
		os.Exit(1)
	}
}

// compile runs the driver over path, logging each per-file failure in a
// directory run to stderr in red as it happens.
func compile(path string, tokensOnly bool) error {
	return driver.Run(path, driver.Options{TokensOnly: tokensOnly}, func(format string, a ...any) {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] "+format+"\n", a...)
	})
}

func showHelp() {
	cyanColor.Println("jackc - Jack language tokenizer and syntax analyzer")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  jackc                       Start interactive mode")
	yellowColor.Println("  jackc <path>                Parse a .jack file or a directory of them")
	yellowColor.Println("  jackc --token-test <path>   Emit tokens only, skip parsing")
	yellowColor.Println("  jackc --help                Display this help message")
	yellowColor.Println("  jackc --version             Display version information")
	cyanColor.Println("")
	cyanColor.Println("OUTPUT:")
	yellowColor.Println("  For input X.jack, writes sibling X.xml (overwriting if present).")
	yellowColor.Println("  For a directory, writes one .xml per .jack file found directly inside it.")
}

func showVersion() {
	cyanColor.Println("jackc - Jack language tokenizer and syntax analyzer")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

func printBanner(writer *os.File) {
	cyanColor.Fprintf(writer, "%s\n", LINE)
	cyanColor.Fprintln(writer, "jackc - Jack language tokenizer and syntax analyzer")
	cyanColor.Fprintf(writer, "%s\n", LINE)
	yellowColor.Fprintln(writer, "Version: "+VERSION+" | Author: "+AUTHOR+" | License: "+LICENSE)
	cyanColor.Fprintf(writer, "%s\n", LINE)
	cyanColor.Fprintln(writer, "Enter a .jack file or directory path to compile.")
	cyanColor.Fprintln(writer, "Prefix with 'tokens ' to run tokens-only mode, e.g. 'tokens Main.jack'.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit.")
	cyanColor.Fprintf(writer, "%s\n", LINE)
}

// runInteractive is jackc's fallback when invoked with no path: a small
// readline loop, one compile attempt per line, colored pass/fail output.
func runInteractive(reader *os.File, writer *os.File) {
	printBanner(writer)

	rl, err := readline.New(PROMPT)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.WriteString("Good bye!\n")
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.WriteString("Good bye!\n")
			break
		}
		rl.SaveHistory(line)

		tokensOnly := false
		if rest, ok := strings.CutPrefix(line, "tokens "); ok {
			tokensOnly = true
			line = strings.TrimSpace(rest)
		}

		if err := compile(line, tokensOnly); err != nil {
			redColor.Fprintf(writer, "FAILED: %v\n", err)
			continue
		}
		greenColor.Fprintf(writer, "OK: %s\n", line)
	}
}
