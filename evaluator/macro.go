package evaluator

import "github.com/monkeylang/monkey/ast"

// DefineMacros scans program's top-level statements for `let name =
// macro(...) {...}` definitions, registers each as a Macro in env, and
// strips those statements from the program in place, preserving the
// relative order of what remains. Macro definitions nested below the top
// level are left untouched and never expanded.
func DefineMacros(program *ast.Program, env *Environment) {
	definitions := []int{}

	for i, statement := range program.Statements {
		if isMacroDefinition(statement) {
			addMacro(statement, env)
			definitions = append(definitions, i)
		}
	}

	for i := len(definitions) - 1; i >= 0; i-- {
		definitionIndex := definitions[i]
		program.Statements = append(
			program.Statements[:definitionIndex],
			program.Statements[definitionIndex+1:]...,
		)
	}
}

func isMacroDefinition(node ast.Statement) bool {
	letStatement, ok := node.(*ast.LetStatement)
	if !ok {
		return false
	}

	_, ok = letStatement.Value.(*ast.MacroLiteral)
	return ok
}

func addMacro(stmt ast.Statement, env *Environment) {
	letStatement := stmt.(*ast.LetStatement)
	macroLiteral := letStatement.Value.(*ast.MacroLiteral)

	macro := &Macro{
		Parameters: macroLiteral.Parameters,
		Env:        env,
		Body:       macroLiteral.Body,
	}

	env.Set(letStatement.Name.Value, macro)
}

// ExpandMacros rewrites program in place, replacing every macro call site
// with the AST its expansion produced, and returns the rewritten node; no
// copy of the input program is made. Expansion is a single pass; the
// substituted AST is never itself re-scanned for further macro calls.
func ExpandMacros(program ast.Node, env *Environment) ast.Node {
	return ast.Modify(program, func(node ast.Node) ast.Node {
		callExpression, ok := node.(*ast.CallExpression)
		if !ok {
			return node
		}

		macro, ok := isMacroCall(callExpression, env)
		if !ok {
			return node
		}

		args := quoteArgs(callExpression)
		evalEnv := extendMacroEnv(macro, args)

		evaluated := Eval(macro.Body, evalEnv)

		quote, ok := evaluated.(*Quote)
		if !ok {
			panic("we only support returning AST-nodes from macros")
		}

		return quote.Node
	})
}

func isMacroCall(exp *ast.CallExpression, env *Environment) (*Macro, bool) {
	identifier, ok := exp.Function.(*ast.Identifier)
	if !ok {
		return nil, false
	}

	obj, ok := env.Get(identifier.Value)
	if !ok {
		return nil, false
	}

	macro, ok := obj.(*Macro)
	if !ok {
		return nil, false
	}

	return macro, true
}

func quoteArgs(exp *ast.CallExpression) []*Quote {
	args := make([]*Quote, 0, len(exp.Arguments))

	for _, a := range exp.Arguments {
		args = append(args, &Quote{Node: a})
	}

	return args
}

func extendMacroEnv(macro *Macro, args []*Quote) *Environment {
	extended := NewEnclosedEnvironment(macro.Env)

	for paramIdx, param := range macro.Parameters {
		if paramIdx >= len(args) {
			break
		}
		extended.Set(param.Value, args[paramIdx])
	}

	return extended
}
