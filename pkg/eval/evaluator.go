package eval

import (
	"fmt"

	"github.com/conneroisu/lisk/internal/types"
	"github.com/conneroisu/lisk/internal/value"
)

// Evaluator implements the tree-walking evaluation engine. It carries no
// per-instance state of its own; all mutable state (bindings, call frames)
// lives in the value.Stack passed to Eval, which the caller owns across an
// entire REPL session or file load.
type Evaluator struct{}

// New creates an evaluator instance.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates expr against env and returns its value, or a runtime
// error. Evaluation is deterministic, single-threaded, and never mutates
// the AST.
func (e *Evaluator) Eval(expr types.Expr, env *value.Stack) (value.Value, error) {
	switch ex := expr.(type) {
	case *types.NumberExpr:
		return value.Number(ex.Value), nil

	case *types.StringExpr:
		return value.String(ex.Value), nil

	case *types.BoolExpr:
		return value.Bool(ex.Value), nil

	case *types.QuoteExpr:
		return value.Quoted{Expr: ex.Inner}, nil

	case *types.IdentExpr:
		return e.evalIdent(ex, env)

	case *types.LambdaExpr:
		return value.NewUserDefinedProcedure(ex.Params, ex.Body), nil

	case *types.DefinitionExpr:
		return e.evalDefinition(ex, env)

	case *types.IfExpr:
		return e.evalIf(ex, env)

	case *types.EvalExpr:
		return e.evalEval(ex, env)

	case *types.ListExpr:
		return e.evalCall(ex, env)

	default:
		return nil, fmt.Errorf("Unrecognised expression type: %T.", expr)
	}
}

func (e *Evaluator) evalIdent(ex *types.IdentExpr, env *value.Stack) (value.Value, error) {
	if v, ok := env.Get(ex.Name); ok {
		return v, nil
	}

	return nil, fmt.Errorf("Undefined identifier '%s'.", ex.Name)
}

func (e *Evaluator) evalDefinition(ex *types.DefinitionExpr, env *value.Stack) (value.Value, error) {
	v, err := e.Eval(ex.Value, env)
	if err != nil {
		return nil, err
	}
	env.Set(ex.Name, v)

	return value.Undefined{}, nil
}

func (e *Evaluator) evalEval(ex *types.EvalExpr, env *value.Stack) (value.Value, error) {
	v, err := e.Eval(ex.Target, env)
	if err != nil {
		return nil, err
	}

	if q, ok := v.(value.Quoted); ok {
		return e.Eval(q.Expr, env)
	}

	return v, nil
}
