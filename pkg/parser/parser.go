// Package parser lowers the generic symbolic tree produced by package list
// into the typed Expression AST consumed by the evaluator, recognising the
// language's five special forms along the way.
package parser

import (
	"github.com/conneroisu/lisk/internal/types"
	"github.com/conneroisu/lisk/pkg/list"
)

// Lower turns one generic list node into a typed Expression. It is the sole
// entry point; the top-level driver calls it once per top-level child of
// the list builder's root.
func Lower(node list.Node) (types.Expr, error) {
	switch n := node.(type) {
	case *list.Compound:
		return lowerCompound(n)
	case *list.Identifier:
		return lowerIdentifier(n)
	case *list.StringLiteral:
		return &types.StringExpr{Value: n.Value}, nil
	case *list.NumericLiteral:
		return &types.NumberExpr{Value: n.Value}, nil
	case *list.BooleanLiteral:
		return &types.BoolExpr{Value: n.Value}, nil
	default:
		pos := node.Position()

		return nil, newLoweringError(pos.Line, pos.Column, "Unrecognised node in source tree.")
	}
}

func lowerIdentifier(n *list.Identifier) (types.Expr, error) {
	if !n.Quoted {
		return &types.IdentExpr{Name: n.Name}, nil
	}

	return &types.QuoteExpr{Inner: &types.IdentExpr{Name: n.Name}}, nil
}

func lowerCompound(n *list.Compound) (types.Expr, error) {
	if n.Quoted {
		inner := *n
		inner.Quoted = false

		lowered, err := lowerCompound(&inner)
		if err != nil {
			return nil, err
		}

		return &types.QuoteExpr{Inner: lowered}, nil
	}

	if len(n.Children) == 0 {
		return &types.ListExpr{Elements: nil}, nil
	}

	if head, ok := n.Children[0].(*list.Identifier); ok && !head.Quoted {
		switch head.Name {
		case "define":
			return lowerDefine(n)
		case "lambda":
			return lowerLambda(n)
		case "if":
			return lowerIf(n)
		case "quote":
			return lowerQuote(n)
		case "eval":
			return lowerEval(n)
		}
	}

	elements := make([]types.Expr, len(n.Children))
	for i, c := range n.Children {
		e, err := Lower(c)
		if err != nil {
			return nil, err
		}
		elements[i] = e
	}

	return &types.ListExpr{Elements: elements}, nil
}

func lowerDefine(n *list.Compound) (types.Expr, error) {
	pos := n.Position()
	rest := n.Children[1:]
	if len(rest) != 2 {
		return nil, newLoweringError(pos.Line, pos.Column, "A definition statement needs exactly 2 arguments.")
	}

	name, ok := rest[0].(*list.Identifier)
	if !ok || name.Quoted {
		return nil, newLoweringError(pos.Line, pos.Column, "The first argument to define must be an identifier.")
	}

	value, err := Lower(rest[1])
	if err != nil {
		return nil, err
	}

	return &types.DefinitionExpr{Name: name.Name, Value: value}, nil
}

func lowerLambda(n *list.Compound) (types.Expr, error) {
	pos := n.Position()
	rest := n.Children[1:]
	if len(rest) < 1 {
		return nil, newLoweringError(pos.Line, pos.Column, "A lambda expression needs a parameter list.")
	}

	paramList, ok := rest[0].(*list.Compound)
	if !ok || paramList.Quoted {
		return nil, newLoweringError(pos.Line, pos.Column, "The parameter list of a lambda must be a list of identifiers.")
	}

	params := make([]string, len(paramList.Children))
	for i, p := range paramList.Children {
		ident, ok := p.(*list.Identifier)
		if !ok || ident.Quoted {
			return nil, newLoweringError(pos.Line, pos.Column, "Lambda parameters must be identifiers.")
		}
		params[i] = ident.Name
	}

	body := make([]types.Expr, len(rest)-1)
	for i, b := range rest[1:] {
		e, err := Lower(b)
		if err != nil {
			return nil, err
		}
		body[i] = e
	}

	return &types.LambdaExpr{Params: params, Body: body}, nil
}

func lowerIf(n *list.Compound) (types.Expr, error) {
	pos := n.Position()
	rest := n.Children[1:]
	if len(rest) != 2 && len(rest) != 3 {
		return nil, newLoweringError(pos.Line, pos.Column, "An if expression needs 2 or 3 arguments.")
	}

	cond, err := Lower(rest[0])
	if err != nil {
		return nil, err
	}
	yes, err := Lower(rest[1])
	if err != nil {
		return nil, err
	}

	var no types.Expr
	if len(rest) == 3 {
		no, err = Lower(rest[2])
		if err != nil {
			return nil, err
		}
	}

	return &types.IfExpr{Cond: cond, Yes: yes, No: no}, nil
}

func lowerQuote(n *list.Compound) (types.Expr, error) {
	pos := n.Position()
	rest := n.Children[1:]
	if len(rest) != 1 {
		return nil, newLoweringError(pos.Line, pos.Column, "A quote expression needs exactly 1 argument.")
	}

	inner, err := Lower(rest[0])
	if err != nil {
		return nil, err
	}

	return &types.QuoteExpr{Inner: inner}, nil
}

func lowerEval(n *list.Compound) (types.Expr, error) {
	pos := n.Position()
	rest := n.Children[1:]
	if len(rest) != 1 {
		return nil, newLoweringError(pos.Line, pos.Column, "An eval expression needs exactly 1 argument.")
	}

	target, err := Lower(rest[0])
	if err != nil {
		return nil, err
	}

	return &types.EvalExpr{Target: target}, nil
}
