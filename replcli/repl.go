/*
File    : golox/replcli/repl.go
Derived : github.com/akashmaji946/go-mix (repl/repl.go)
*/

// Package replcli implements the interactive Read-Eval-Print Loop: line
// editing and history via chzyer/readline, colored diagnostics via
// fatih/color, one persistent environment.Environment kept alive across
// the whole session so that `var`/`fun` declarations in one line are
// visible to the next, unlike go-mix's REPL, which re-parses and
// re-evaluates a single expression per line against a fresh evaluator.
package replcli

import (
	"io"
	"strings"

	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds an interactive session's banner/prompt text. Start creates
// the session's single Interp, which — unlike a one-shot `run`
// invocation — stays alive for the session's whole lifetime.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner text and prompt.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop until '.exit' or EOF. Each accepted line is
// lexed and parsed as a full program (so multi-statement lines and
// block statements work, not just single expressions) and executed
// against the session's one persistent environment.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	in := interp.New(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			return
		}
		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)
		r.execute(w, line, in)
	}
}

// execute runs one line against in, reporting lex/parse/runtime errors
// in red and continuing the loop regardless of outcome — unlike file
// execution mode, a REPL error never ends the session.
func (r *Repl) execute(w io.Writer, line string, in *interp.Interp) {
	toks, lexErrs := lexer.Tokenize(line)
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			redColor.Fprintf(w, "%s\n", e.Error())
		}
		return
	}

	stmts, perr := parser.ParseProgram(toks)
	if perr != nil {
		redColor.Fprintf(w, "%s\n", perr.Error())
		return
	}

	if rerr := in.Run(stmts); rerr != nil {
		redColor.Fprintf(w, "%s\n", rerr.Error())
	}
}
