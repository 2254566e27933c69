// Package repl implements the interactive Monkey read-eval-print loop.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/monkeylang/monkey/evaluator"
	"github.com/monkeylang/monkey/lexer"
	"github.com/monkeylang/monkey/parser"
)

const PROMPT = ">> "

// Start runs the REPL, reading lines via a liner.Liner for history and
// editing, echoing the result of each complete parsed/expanded/evaluated
// line to out. Exits on Ctrl+D.
func Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	env := evaluator.NewEnvironment()
	macroEnv := evaluator.NewEnvironment()

	for {
		input, err := line.Prompt(PROMPT)
		if err != nil {
			if err == io.EOF {
				return
			}
			if err == liner.ErrPromptAborted {
				continue
			}
			fmt.Fprintf(out, "error reading input: %v\n", err)
			continue
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		l := lexer.New(input)
		p := parser.New(l)
		program := p.ParseProgram()

		if errs := p.Errors(); len(errs) != 0 {
			printParserErrors(out, errs)
			continue
		}

		evaluator.DefineMacros(program, macroEnv)
		expanded := evaluator.ExpandMacros(program, macroEnv)

		evaluated := evaluator.Eval(expanded, env)
		if evaluated != nil && evaluated != evaluator.NULL {
			io.WriteString(out, evaluated.Inspect())
			io.WriteString(out, "\n")
		}
	}
}

func printParserErrors(out io.Writer, errs []string) {
	for _, msg := range errs {
		io.WriteString(out, "\t"+msg+"\n")
	}
}
