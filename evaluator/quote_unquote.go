package evaluator

import (
	"fmt"

	"github.com/monkeylang/monkey/ast"
	"github.com/monkeylang/monkey/lexer"
)

// quote implements the `quote` special form: its argument is never
// evaluated directly. Instead the AST is walked and every `unquote(x)`
// call site is replaced by the AST of x's evaluated value. If an unquote
// argument evaluates to an error, or to a value with no AST form, that
// error is the result of the whole quote expression.
func quote(node ast.Node, env *Environment) Object {
	u := &unquoter{env: env}
	node = u.rewrite(node)
	if u.err != nil {
		return u.err
	}
	return &Quote{Node: node}
}

// unquoter rewrites unquote(x) call sites reachable from a quoted AST,
// without descending into the argument of a nested quote(...) call: an
// unquote inside a nested quote belongs to that inner quote, not this one,
// and must be left for its own eventual evaluation. This requires a
// traversal that decides whether to descend *before* visiting children,
// unlike the generic post-order ast.Modify shared by macro expansion.
// The first error produced by an unquote argument is captured in err and
// stops further substitution.
type unquoter struct {
	env *Environment
	err *Error
}

func (u *unquoter) rewrite(quoted ast.Node) ast.Node {
	if u.err != nil {
		return quoted
	}

	call, ok := quoted.(*ast.CallExpression)
	if !ok {
		return u.rewriteChildren(quoted)
	}

	if isNestedQuoteCall(call) {
		return call
	}

	if isUnquoteCall(call) {
		if len(call.Arguments) != 1 {
			return call
		}
		unquoted := Eval(call.Arguments[0], u.env)
		if errObj, ok := unquoted.(*Error); ok {
			u.err = errObj
			return call
		}
		converted := convertObjectToASTNode(unquoted)
		if converted == nil {
			u.err = newError("unquote argument has no AST form: %s", unquoted.Type())
			return call
		}
		return converted
	}

	return u.rewriteChildren(call)
}

// rewriteChildren recurses into every sub-expression and sub-statement a
// node can reach, mirroring ast.Modify's shape but stopping at nested
// quote(...) subtrees instead of rewriting through them.
func (u *unquoter) rewriteChildren(node ast.Node) ast.Node {
	switch node := node.(type) {
	case *ast.Program:
		for i, stmt := range node.Statements {
			node.Statements[i], _ = u.rewrite(stmt).(ast.Statement)
		}
	case *ast.ExpressionStatement:
		node.Expression, _ = u.rewrite(node.Expression).(ast.Expression)
	case *ast.BlockStatement:
		for i, stmt := range node.Statements {
			node.Statements[i], _ = u.rewrite(stmt).(ast.Statement)
		}
	case *ast.LetStatement:
		node.Value, _ = u.rewrite(node.Value).(ast.Expression)
	case *ast.ReturnStatement:
		node.ReturnValue, _ = u.rewrite(node.ReturnValue).(ast.Expression)
	case *ast.PrefixExpression:
		node.Right, _ = u.rewrite(node.Right).(ast.Expression)
	case *ast.InfixExpression:
		node.Left, _ = u.rewrite(node.Left).(ast.Expression)
		node.Right, _ = u.rewrite(node.Right).(ast.Expression)
	case *ast.IndexExpression:
		node.Left, _ = u.rewrite(node.Left).(ast.Expression)
		node.Index, _ = u.rewrite(node.Index).(ast.Expression)
	case *ast.IfExpression:
		node.Condition, _ = u.rewrite(node.Condition).(ast.Expression)
		node.Consequence, _ = u.rewrite(node.Consequence).(*ast.BlockStatement)
		if node.Alternative != nil {
			node.Alternative, _ = u.rewrite(node.Alternative).(*ast.BlockStatement)
		}
	case *ast.FunctionLiteral:
		node.Body, _ = u.rewrite(node.Body).(*ast.BlockStatement)
	case *ast.MacroLiteral:
		node.Body, _ = u.rewrite(node.Body).(*ast.BlockStatement)
	case *ast.ArrayLiteral:
		for i, el := range node.Elements {
			node.Elements[i], _ = u.rewrite(el).(ast.Expression)
		}
	case *ast.HashLiteral:
		for i, pair := range node.Pairs {
			key, _ := u.rewrite(pair.Key).(ast.Expression)
			value, _ := u.rewrite(pair.Value).(ast.Expression)
			node.Pairs[i] = ast.HashPair{Key: key, Value: value}
		}
	case *ast.CallExpression:
		node.Function, _ = u.rewrite(node.Function).(ast.Expression)
		for i, a := range node.Arguments {
			node.Arguments[i], _ = u.rewrite(a).(ast.Expression)
		}
	}

	return node
}

func isNestedQuoteCall(node ast.Node) bool {
	call, ok := node.(*ast.CallExpression)
	if !ok {
		return false
	}
	ident, ok := call.Function.(*ast.Identifier)
	return ok && ident.Value == "quote"
}

func isUnquoteCall(node ast.Node) bool {
	callExpression, ok := node.(*ast.CallExpression)
	if !ok {
		return false
	}

	ident, ok := callExpression.Function.(*ast.Identifier)
	if !ok {
		return false
	}

	return ident.Value == "unquote"
}

func convertObjectToASTNode(obj Object) ast.Node {
	switch obj := obj.(type) {
	case *Integer:
		t := lexer.Token{Type: lexer.INT, Literal: fmt.Sprintf("%d", obj.Value)}
		return &ast.IntegerLiteral{Token: t, Value: obj.Value}

	case *Boolean:
		var t lexer.Token
		if obj.Value {
			t = lexer.Token{Type: lexer.TRUE, Literal: "true"}
		} else {
			t = lexer.Token{Type: lexer.FALSE, Literal: "false"}
		}
		return &ast.Boolean{Token: t, Value: obj.Value}

	case *Quote:
		return obj.Node

	default:
		return nil
	}
}
