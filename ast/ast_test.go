package ast

import (
	"reflect"
	"testing"

	"github.com/monkeylang/monkey/lexer"
)

func TestString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: lexer.Token{Type: lexer.LET, Literal: "let"},
				Name: &Identifier{
					Token: lexer.Token{Type: lexer.IDENT, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: lexer.Token{Type: lexer.IDENT, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	if program.String() != "let myVar = anotherVar;" {
		t.Errorf("program.String() wrong. got=%q", program.String())
	}
}

func TestModifyReplacesIntegerLiterals(t *testing.T) {
	one := func() Expression { return &IntegerLiteral{Value: 1} }
	two := func() Expression { return &IntegerLiteral{Value: 2} }

	turnOneIntoTwo := func(node Node) Node {
		integer, ok := node.(*IntegerLiteral)
		if !ok {
			return node
		}
		if integer.Value != 1 {
			return node
		}
		integer.Value = 2
		return integer
	}

	tests := []struct {
		input    Node
		expected Node
	}{
		{one(), two()},
		{
			&Program{Statements: []Statement{
				&ExpressionStatement{Expression: one()},
			}},
			&Program{Statements: []Statement{
				&ExpressionStatement{Expression: two()},
			}},
		},
		{
			&InfixExpression{Left: one(), Operator: "+", Right: two()},
			&InfixExpression{Left: two(), Operator: "+", Right: two()},
		},
		{
			&PrefixExpression{Operator: "-", Right: one()},
			&PrefixExpression{Operator: "-", Right: two()},
		},
		{
			&IndexExpression{Left: one(), Index: one()},
			&IndexExpression{Left: two(), Index: two()},
		},
		{
			&IfExpression{
				Condition: one(),
				Consequence: &BlockStatement{
					Statements: []Statement{&ExpressionStatement{Expression: one()}},
				},
				Alternative: &BlockStatement{
					Statements: []Statement{&ExpressionStatement{Expression: one()}},
				},
			},
			&IfExpression{
				Condition: two(),
				Consequence: &BlockStatement{
					Statements: []Statement{&ExpressionStatement{Expression: two()}},
				},
				Alternative: &BlockStatement{
					Statements: []Statement{&ExpressionStatement{Expression: two()}},
				},
			},
		},
		{
			&ReturnStatement{ReturnValue: one()},
			&ReturnStatement{ReturnValue: two()},
		},
		{
			&LetStatement{Value: one()},
			&LetStatement{Value: two()},
		},
		{
			&FunctionLiteral{
				Parameters: []*Identifier{},
				Body: &BlockStatement{
					Statements: []Statement{&ExpressionStatement{Expression: one()}},
				},
			},
			&FunctionLiteral{
				Parameters: []*Identifier{},
				Body: &BlockStatement{
					Statements: []Statement{&ExpressionStatement{Expression: two()}},
				},
			},
		},
		{
			&ArrayLiteral{Elements: []Expression{one(), one()}},
			&ArrayLiteral{Elements: []Expression{two(), two()}},
		},
		{
			&MacroLiteral{
				Parameters: []*Identifier{},
				Body: &BlockStatement{
					Statements: []Statement{&ExpressionStatement{Expression: one()}},
				},
			},
			&MacroLiteral{
				Parameters: []*Identifier{},
				Body: &BlockStatement{
					Statements: []Statement{&ExpressionStatement{Expression: two()}},
				},
			},
		},
	}

	for _, tt := range tests {
		modified := Modify(tt.input, turnOneIntoTwo)
		if !reflect.DeepEqual(modified, tt.expected) {
			t.Errorf("not equal. got=%#v, want=%#v", modified, tt.expected)
		}
	}

	hashLiteral := &HashLiteral{
		Pairs: []HashPair{
			{Key: one(), Value: one()},
			{Key: one(), Value: one()},
		},
	}
	Modify(hashLiteral, turnOneIntoTwo)
	for _, pair := range hashLiteral.Pairs {
		key, ok := pair.Key.(*IntegerLiteral)
		if !ok || key.Value != 2 {
			t.Errorf("value of key is not 2. got=%d", key.Value)
		}
		value, ok := pair.Value.(*IntegerLiteral)
		if !ok || value.Value != 2 {
			t.Errorf("value of value is not 2. got=%d", value.Value)
		}
	}
}
