package eval

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/conneroisu/lisk/internal/value"
)

// NewGlobalStack creates the environment stack for a fresh top-level
// session: a single global frame bound with every built-in procedure.
func NewGlobalStack() *value.Stack {
	env := value.NewStack()
	for kind := value.BuiltinSum; kind <= value.BuiltinNot; kind++ {
		env.Set(kind.String(), value.NewBuiltinProcedure(kind))
	}

	return env
}

// applyBuiltin dispatches to the closed set of built-in procedures.
func applyBuiltin(kind value.BuiltinKind, args []value.Value) (value.Value, error) {
	switch kind {
	case value.BuiltinSum:
		return foldNumeric(args, 0, func(acc, x float64) float64 { return acc + x }), nil
	case value.BuiltinProduct:
		return foldNumeric(args, 1, func(acc, x float64) float64 { return acc * x }), nil
	case value.BuiltinDifference:
		return arithmeticWithUnary(args, func(x float64) float64 { return -x },
			func(acc, x float64) float64 { return acc - x })
	case value.BuiltinDivision:
		return arithmeticWithUnary(args, func(x float64) float64 { return 1 / x },
			func(acc, x float64) float64 { return acc / x })
	case value.BuiltinEqual:
		return compareExactlyTwo(args, func(c int) bool { return c == 0 })
	case value.BuiltinLess:
		return compareExactlyTwo(args, func(c int) bool { return c < 0 })
	case value.BuiltinGreater:
		return compareExactlyTwo(args, func(c int) bool { return c > 0 })
	case value.BuiltinAnd:
		return foldBoolean(args, true, func(acc, x bool) bool { return acc && x })
	case value.BuiltinOr:
		return foldBoolean(args, false, func(acc, x bool) bool { return acc || x })
	case value.BuiltinNot:
		return builtinNot(args)
	default:
		return nil, fmt.Errorf("Unknown built-in procedure: %s.", kind)
	}
}

// numericArgs filters args down to the Number-typed ones, per the
// language's rule that non-numeric arguments to arithmetic are silently
// ignored — they contribute neither to the accumulator nor to the count
// used to distinguish the unary and n-ary forms of `-` and `/`.
func numericArgs(args []value.Value) []float64 {
	return lo.FilterMap(args, func(v value.Value, _ int) (float64, bool) {
		n, ok := v.(value.Number)

		return float64(n), ok
	})
}

// foldNumeric folds the numeric arguments with fn starting from identity,
// used for `+` (identity 0) and `*` (identity 1), both of which accept zero
// or more arguments.
func foldNumeric(args []value.Value, identity float64, fn func(acc, x float64) float64) value.Value {
	return value.Number(lo.Reduce(numericArgs(args), func(acc float64, x float64, _ int) float64 {
		return fn(acc, x)
	}, identity))
}

// arithmeticWithUnary implements the one-arg-means-inverse, two-or-more-
// means-fold-from-first rule shared by `-` and `/`. At least one numeric
// argument is required.
func arithmeticWithUnary(args []value.Value, unary func(float64) float64, fold func(acc, x float64) float64) (value.Value, error) {
	nums := numericArgs(args)
	if len(nums) == 0 {
		return nil, fmt.Errorf("Expected at least 1 numeric argument, got %d.", len(nums))
	}
	if len(nums) == 1 {
		return value.Number(unary(nums[0])), nil
	}

	return value.Number(lo.Reduce(nums[1:], func(acc float64, x float64, _ int) float64 {
		return fold(acc, x)
	}, nums[0])), nil
}

// foldBoolean coerces every argument to a boolean and folds with fn,
// without short-circuiting, for `and` and `or`. Both require two or more
// arguments.
func foldBoolean(args []value.Value, identity bool, fn func(acc, x bool) bool) (value.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("Expected 2 or more arguments, got %d.", len(args))
	}

	acc := identity
	for _, a := range args {
		b, err := toBool(a)
		if err != nil {
			return nil, err
		}
		acc = fn(acc, b)
	}

	return value.Bool(acc), nil
}

func builtinNot(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("Expected exactly 1 argument, got %d.", len(args))
	}
	b, err := toBool(args[0])
	if err != nil {
		return nil, err
	}

	return value.Bool(!b), nil
}

// compareExactlyTwo implements `=`, `<`, `>`: exactly two arguments of the
// same kind (number, boolean, or string), compared and reduced through
// judge.
func compareExactlyTwo(args []value.Value, judge func(cmp int) bool) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("Expected exactly 2 arguments, got %d.", len(args))
	}

	cmp, err := compare(args[0], args[1])
	if err != nil {
		return nil, err
	}

	return value.Bool(judge(cmp)), nil
}

// compare orders two values of the same kind: numbers by IEEE-754 order
// with no special case for NaN (a NaN operand is neither less nor greater
// than the other, so it falls through to "equal": `<` and `>` yield #f and
// `=` yields #t), booleans with
// false < true, and strings lexicographically. Mismatched or unsupported
// kinds are a runtime error.
func compare(a, b value.Value) (int, error) {
	switch x := a.(type) {
	case value.Number:
		y, ok := b.(value.Number)
		if !ok {
			return 0, fmt.Errorf("Cannot compare %s with %s.", a.Type(), b.Type())
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}

	case value.Bool:
		y, ok := b.(value.Bool)
		if !ok {
			return 0, fmt.Errorf("Cannot compare %s with %s.", a.Type(), b.Type())
		}
		switch {
		case x == y:
			return 0, nil
		case !bool(x) && bool(y):
			return -1, nil
		default:
			return 1, nil
		}

	case value.String:
		y, ok := b.(value.String)
		if !ok {
			return 0, fmt.Errorf("Cannot compare %s with %s.", a.Type(), b.Type())
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}

	default:
		return 0, fmt.Errorf("Cannot compare values of type %s.", a.Type())
	}
}
