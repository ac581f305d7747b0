package eval

import (
	"errors"
	"fmt"

	"github.com/conneroisu/lisk/internal/types"
	"github.com/conneroisu/lisk/internal/value"
)

// evalCall evaluates an unrecognised compound form as a procedure call: the
// first element must evaluate to a Procedure, and the rest are evaluated
// left-to-right as its arguments.
func (e *Evaluator) evalCall(ex *types.ListExpr, env *value.Stack) (value.Value, error) {
	if len(ex.Elements) == 0 {
		return nil, errors.New("Cannot evaluate an empty expression.")
	}

	head, err := e.Eval(ex.Elements[0], env)
	if err != nil {
		return nil, err
	}

	proc, ok := head.(value.Procedure)
	if !ok {
		return nil, fmt.Errorf("Cannot call a value of type %s.", head.Type())
	}

	args := make([]value.Value, len(ex.Elements)-1)
	for i, argExpr := range ex.Elements[1:] {
		v, err := e.Eval(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if proc.IsBuiltin {
		return applyBuiltin(proc.Builtin, args)
	}

	return e.applyUserDefined(proc.UserDefined, args, env)
}

// applyUserDefined invokes a closure-less function: a new frame is pushed,
// binding each parameter to its argument, the body is evaluated in that
// frame against the caller's live stack, and the frame is popped whether
// the call returns a value or an error. Free identifiers in the body
// resolve dynamically against env at call time, not against any
// environment captured at definition time — user-defined functions capture
// nothing.
func (e *Evaluator) applyUserDefined(fn value.UserDefined, args []value.Value, env *value.Stack) (value.Value, error) {
	if len(fn.Params) != len(args) {
		return nil, errors.New("Invalid number of arguments provided.")
	}
	if len(fn.Body) == 0 {
		return nil, errors.New("Empty function body.")
	}

	env.Push()
	defer env.Pop()

	for i, p := range fn.Params {
		env.Set(p, args[i])
	}

	var result value.Value
	var err error
	for _, bodyExpr := range fn.Body {
		result, err = e.Eval(bodyExpr, env)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
