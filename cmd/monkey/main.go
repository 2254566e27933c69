// Command monkey is the flag-driven entry point for the Monkey interpreter:
// no flags runs the REPL, -e/--eval evaluates a string, and a bare file
// argument reads and evaluates that file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/monkeylang/monkey/evaluator"
	"github.com/monkeylang/monkey/lexer"
	"github.com/monkeylang/monkey/parser"
	"github.com/monkeylang/monkey/repl"
)

func main() {
	evalFlag := flag.String("e", "", "evaluate code string")
	evalLongFlag := flag.String("eval", "", "evaluate code string")
	checkFlag := flag.Bool("c", false, "check syntax without executing")
	checkLongFlag := flag.Bool("check", false, "check syntax without executing")
	flag.Parse()

	code := *evalFlag
	if code == "" {
		code = *evalLongFlag
	}
	check := *checkFlag || *checkLongFlag

	switch {
	case code != "":
		os.Exit(runSource(code, check))
	case flag.NArg() > 0:
		content, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
		os.Exit(runSource(string(content), check))
	default:
		repl.Start(os.Stdin, os.Stdout)
	}
}

// runSource lexes, parses, macro-expands, and (unless check is true)
// evaluates code, printing the result or any error to the appropriate
// stream and returning a process exit code.
func runSource(code string, check bool) int {
	l := lexer.New(code)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		return 1
	}

	if check {
		return 0
	}

	macroEnv := evaluator.NewEnvironment()
	evaluator.DefineMacros(program, macroEnv)
	expanded := evaluator.ExpandMacros(program, macroEnv)

	env := evaluator.NewEnvironment()
	evaluated := evaluator.Eval(expanded, env)

	if evaluated == nil {
		return 0
	}

	if errObj, ok := evaluated.(*evaluator.Error); ok {
		fmt.Fprintln(os.Stderr, errObj.Inspect())
		return 1
	}

	if evaluated != evaluator.NULL {
		fmt.Println(evaluated.Inspect())
	}

	return 0
}
