/*
File    : golox/cmd/golox/main.go
Derived : github.com/akashmaji946/go-mix (main/main.go dispatch shape, print_visitor.go)
*/

// Command golox is the CLI entry point: `golox <command> <path>` for the
// tokenize/parse/evaluate/run pipeline, or bare `golox` to start the
// REPL.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/replcli"
	"github.com/fatih/color"
)

const (
	version = "v1.0.0"
	author  = "golox"
	prompt  = "golox >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   ____  ___  __    ____ _  __
  / ___|/ _ \/ /   / __ \ \/ /
 / (_ // // / /__ / /_/ /\  /
 \___//____/____/ \____/ /_/
`
)

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) == 1 {
		replcli.New(banner, version, author, line, prompt).Start(os.Stdout)
		return
	}

	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: golox <tokenize|parse|evaluate|run> <path>")
		os.Exit(64)
	}

	command, path := os.Args[1], os.Args[2]

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file %q: %v\n", path, err)
		os.Exit(64)
	}

	os.Exit(run(command, string(src)))
}

// run dispatches a single command over src and returns the process exit
// code: 0 on success, 65 on a lex/parse error, 70 on a runtime error, 64
// on a bad invocation.
func run(command string, src string) int {
	switch command {
	case "tokenize":
		return runTokenize(src)
	case "parse":
		return runParse(src)
	case "evaluate":
		return runEvaluate(src)
	case "run":
		return runProgram(src)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q.\n", command)
		return 64
	}
}

func runTokenize(src string) int {
	toks, lexErrs := lexer.Tokenize(src)
	lexer.PrintTokens(os.Stdout, toks)
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return 65
	}
	return 0
}

func runParse(src string) int {
	toks, lexErrs := lexer.Tokenize(src)
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return 65
	}

	exprs, perr := parser.ParseExpressions(toks)
	if perr != nil {
		redColor.Fprintln(os.Stderr, perr.Error())
		return 65
	}
	for _, e := range exprs {
		fmt.Fprintln(os.Stdout, e.String())
	}
	return 0
}

func runEvaluate(src string) int {
	toks, lexErrs := lexer.Tokenize(src)
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return 65
	}

	exprs, perr := parser.ParseExpressions(toks)
	if perr != nil {
		redColor.Fprintln(os.Stderr, perr.Error())
		return 65
	}

	in := interp.New(os.Stdout)
	for _, e := range exprs {
		v, rerr := in.EvalTopLevel(e)
		if rerr != nil {
			redColor.Fprintln(os.Stderr, rerr.Error())
			return 70
		}
		fmt.Fprintln(os.Stdout, v.String())
	}
	return 0
}

func runProgram(src string) int {
	toks, lexErrs := lexer.Tokenize(src)
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return 65
	}

	stmts, perr := parser.ParseProgram(toks)
	if perr != nil {
		redColor.Fprintln(os.Stderr, perr.Error())
		return 65
	}

	in := interp.New(os.Stdout)
	if rerr := in.Run(stmts); rerr != nil {
		redColor.Fprintln(os.Stderr, rerr.Error())
		return 70
	}
	return 0
}
