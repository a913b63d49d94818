/*
File    : glox/repl/repl.go

Package repl implements the Read-Eval-Print Loop for the Lox interpreter.
The REPL provides an interactive environment where users can:
- Enter Lox code line by line
- See immediate feedback from `print` statements
- Navigate command history using arrow keys
- Receive colored feedback for different kinds of errors

The REPL uses the readline library for line editing and keeps a single
Interpreter (and Resolver) alive across the whole session, so variables and
functions declared on one line stay visible to the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/loxlang/glox/eval"
	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/parser"
	"github.com/loxlang/glox/resolver"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to glox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop, reading one line at a time from
// readline, running it through the full lex/parse/resolve/interpret
// pipeline, and printing whatever `print` statements inside it wrote
// (plus any error). A Resolver and Interpreter are created once and kept
// alive for the session's whole duration: the interpreter's global
// environment and the resolver's locals map both accumulate across lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	res := resolver.New()
	interp := eval.New(res.Locals())
	interp.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, res, interp)
	}
}

// evalLine runs one line of input through the pipeline, reporting lexer,
// parser, resolver, or runtime errors in red and continuing the session
// either way — unlike file execution, a REPL line's failure never exits.
func (r *Repl) evalLine(writer io.Writer, line string, res *resolver.Resolver, interp *eval.Interpreter) {
	tokens, lexErrs := lexer.New(line).ScanTokens()
	for _, e := range lexErrs {
		redColor.Fprintf(writer, "%s\n", e)
	}
	if len(lexErrs) > 0 {
		return
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	if resolveErrs := res.Resolve(stmts); len(resolveErrs) > 0 {
		for _, e := range resolveErrs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	if err := interp.Interpret(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
