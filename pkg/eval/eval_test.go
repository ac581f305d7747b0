package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/lisk/internal/value"
	"github.com/conneroisu/lisk/pkg/lexer"
	"github.com/conneroisu/lisk/pkg/list"
	"github.com/conneroisu/lisk/pkg/parser"
)

// testEval lexes, builds, lowers, and evaluates a single top-level form
// against a fresh global environment, mirroring the teacher's own
// lexer -> parser -> evaluator test helper chain.
func testEval(t *testing.T, input string) (value.Value, error) {
	t.Helper()

	tokens := lexer.New(input).Tokenize()
	root := list.New(tokens).Build()
	require.Len(t, root.Children, 1, "expected exactly one top-level form")

	expr, err := parser.Lower(root.Children[0])
	require.NoError(t, err)

	return New().Eval(expr, NewGlobalStack())
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"(+ 1 2 3)", 6},
		{"(+)", 0},
		{"(* 2 3 4)", 24},
		{"(*)", 1},
		{"(- 5)", -5},
		{"(- 10 3 2)", 5},
		{"(/ 2)", 0.5},
		{"(/ 100 2 5)", 10},
	}

	for _, tt := range tests {
		result, err := testEval(t, tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, value.Number(tt.expected), result, tt.input)
	}
}

func TestArithmeticIgnoresNonNumericArguments(t *testing.T) {
	result, err := testEval(t, `(+ 1 "two")`)
	require.NoError(t, err)
	require.Equal(t, value.Number(1), result)
}

func TestEvalComparison(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"(= 3 3)", true},
		{"(= 3 4)", false},
		{"(< 3 4)", true},
		{"(> 3 4)", false},
		{`(= "a" "a")`, true},
		{"(= #t #t)", true},
	}

	for _, tt := range tests {
		result, err := testEval(t, tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, value.Bool(tt.expected), result, tt.input)
	}
}

func TestEvalAndOrDoNotShortCircuit(t *testing.T) {
	result, err := testEval(t, "(and #t #f)")
	require.NoError(t, err)
	require.Equal(t, value.Bool(false), result)

	result, err = testEval(t, "(or #f #f #t)")
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), result)

	// Every argument is coerced, even after the result is already decided,
	// so a procedure argument after #t still raises a coercion error.
	_, err = testEval(t, "(or #t +)")
	require.Error(t, err)
	require.Equal(t, "Cannot coerce procedure to a boolean.", err.Error())
}

func TestEvalNot(t *testing.T) {
	result, err := testEval(t, "(not #f)")
	require.NoError(t, err)
	require.Equal(t, value.Bool(true), result)
}

func TestEvalIf(t *testing.T) {
	result, err := testEval(t, `(if (< 3 4) "yes" "no")`)
	require.NoError(t, err)
	require.Equal(t, value.String("yes"), result)
}

func TestEvalIfMissingAlternativeYieldsUndefined(t *testing.T) {
	result, err := testEval(t, `(if #f "yes")`)
	require.NoError(t, err)
	require.Equal(t, value.Undefined{}, result)
}

func TestEvalQuoteAndEval(t *testing.T) {
	result, err := testEval(t, "(eval (quote (+ 10 20)))")
	require.NoError(t, err)
	require.Equal(t, value.Number(30), result)
}

func TestEvalUndefinedIdentifier(t *testing.T) {
	_, err := testEval(t, "(undefined-name)")
	require.Error(t, err)
	require.Equal(t, "Undefined identifier 'undefined-name'.", err.Error())
}

func TestEvalFrameBalanceAcrossCalls(t *testing.T) {
	env := NewGlobalStack()
	evaluator := New()

	define := func(input string) {
		tokens := lexer.New(input).Tokenize()
		root := list.New(tokens).Build()
		expr, err := parser.Lower(root.Children[0])
		require.NoError(t, err)
		_, err = evaluator.Eval(expr, env)
		require.NoError(t, err)
	}

	define("(define sq (lambda (n) (* n n)))")
	before := env.Depth()

	tokens := lexer.New("(sq 7)").Tokenize()
	root := list.New(tokens).Build()
	expr, err := parser.Lower(root.Children[0])
	require.NoError(t, err)
	result, err := evaluator.Eval(expr, env)
	require.NoError(t, err)
	require.Equal(t, value.Number(49), result)
	require.Equal(t, before, env.Depth(), "frame stack must be balanced after a call")
}

func TestEvalDynamicScopeSeesCallerBindings(t *testing.T) {
	env := NewGlobalStack()
	evaluator := New()

	run := func(input string) value.Value {
		tokens := lexer.New(input).Tokenize()
		root := list.New(tokens).Build()
		expr, err := parser.Lower(root.Children[0])
		require.NoError(t, err)
		result, err := evaluator.Eval(expr, env)
		require.NoError(t, err)

		return result
	}

	run("(define f (lambda (a b) (if (= a b) a (+ a b))))")
	require.Equal(t, value.Number(2), run("(f 2 2)"))
	require.Equal(t, value.Number(5), run("(f 2 3)"))

	// g's free identifier y resolves against the frame of its caller h.
	run("(define g (lambda () y))")
	run("(define h (lambda (y) (g)))")
	require.Equal(t, value.Number(7), run("(h 7)"))
}
