package eval

import (
	"fmt"

	"github.com/conneroisu/lisk/internal/types"
	"github.com/conneroisu/lisk/internal/value"
)

func (e *Evaluator) evalIf(ex *types.IfExpr, env *value.Stack) (value.Value, error) {
	cond, err := e.Eval(ex.Cond, env)
	if err != nil {
		return nil, err
	}

	truthy, err := toBool(cond)
	if err != nil {
		return nil, err
	}

	if truthy {
		return e.Eval(ex.Yes, env)
	}
	if ex.No == nil {
		return value.Undefined{}, nil
	}

	return e.Eval(ex.No, env)
}

// toBool implements the language's boolean coercion rule, used by `if`,
// `and`, `or`, and `not`:
//
//	Bool      -> itself
//	Number    -> x >= 0.0
//	String    -> true
//	Quoted    -> true
//	Procedure -> error
//	Undefined -> error
func toBool(v value.Value) (bool, error) {
	switch val := v.(type) {
	case value.Bool:
		return bool(val), nil
	case value.Number:
		return float64(val) >= 0.0, nil
	case value.String:
		return true, nil
	case value.Quoted:
		return true, nil
	default:
		return false, fmt.Errorf("Cannot coerce %s to a boolean.", v.Type())
	}
}
