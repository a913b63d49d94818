/*
File    : glox/cmd/glox/main.go

Package main is the entry point for the glox interpreter. It provides two
modes of operation:
 1. REPL Mode (default, no arguments): interactive read-eval-print loop
 2. File Mode (one argument): execute a single Lox source file

More than one argument is a usage error. The interpreter runs source
through a lexer -> parser -> resolver -> interpreter pipeline, exiting with
the status code the Lox driver contract requires: 0 on a clean run, 64 on
bad usage, 65 when the lexer/parser/resolver found any static error, 70 on
an uncaught runtime error.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/loxlang/glox/eval"
	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/parser"
	"github.com/loxlang/glox/repl"
	"github.com/loxlang/glox/resolver"
)

// VERSION is the current version of the glox interpreter.
var VERSION = "v1.0.0"

// AUTHOR is shown in the REPL banner.
var AUTHOR = "glox contributors"

// LICENSE is the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "glox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ▗▄▄▖▗▖     ▗▄▖ ▗▖  ▗▖
  ▐▌   ▐▌    ▐▌ ▐▌ ▝▚▞▘
  ▐▌▝▜▌▐▌    ▐▌ ▐▌  ▐▌
  ▝▚▄▞▘▐▙▄▄▖▝▚▄▞▘▗▞▘▝▚▖
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var redColor = color.New(color.FgRed)

// Exit codes per the Lox driver contract.
const (
	exitUsage   = 64
	exitDataErr = 65
	exitSoftErr = 70
)

func main() {
	switch len(os.Args) {
	case 1:
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: glox [script]")
		os.Exit(exitUsage)
	}
}

// runFile reads, resolves, and interprets a single source file, exiting
// with the code matching whichever stage (if any) first found a problem.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(exitUsage)
	}

	tokens, lexErrs := lexer.New(string(source)).ScanTokens()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(exitDataErr)
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(exitDataErr)
	}

	res := resolver.New()
	if resolveErrs := res.Resolve(stmts); len(resolveErrs) > 0 {
		for _, e := range resolveErrs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(exitDataErr)
	}

	interp := eval.New(res.Locals())
	interp.SetWriter(os.Stdout)
	if err := interp.Interpret(stmts); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(exitSoftErr)
	}
}
