package parser

import (
	"testing"

	"github.com/conneroisu/lisk/internal/types"
	"github.com/conneroisu/lisk/pkg/lexer"
	"github.com/conneroisu/lisk/pkg/list"
)

func lowerSource(t *testing.T, input string) types.Expr {
	t.Helper()
	tokens := lexer.New(input).Tokenize()
	root := list.New(tokens).Build()
	if len(root.Children) != 1 {
		t.Fatalf("expected exactly 1 top-level form, got %d", len(root.Children))
	}
	expr, err := Lower(root.Children[0])
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}

	return expr
}

func TestLowerCall(t *testing.T) {
	expr := lowerSource(t, "(+ 1 2)")
	list, ok := expr.(*types.ListExpr)
	if !ok {
		t.Fatalf("expected ListExpr, got %T", expr)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(list.Elements))
	}
}

func TestLowerDefine(t *testing.T) {
	expr := lowerSource(t, "(define x 5)")
	def, ok := expr.(*types.DefinitionExpr)
	if !ok {
		t.Fatalf("expected DefinitionExpr, got %T", expr)
	}
	if def.Name != "x" {
		t.Fatalf("expected name x, got %s", def.Name)
	}
}

func TestLowerDefineWrongArity(t *testing.T) {
	tokens := lexer.New("(define)").Tokenize()
	root := list.New(tokens).Build()
	_, err := Lower(root.Children[0])
	if err == nil {
		t.Fatalf("expected an error")
	}
	if err.Error() != "A definition statement needs exactly 2 arguments." {
		t.Fatalf("unexpected error message: %s", err.Error())
	}
}

func TestLowerLambda(t *testing.T) {
	expr := lowerSource(t, "(lambda (n) (* n n))")
	lam, ok := expr.(*types.LambdaExpr)
	if !ok {
		t.Fatalf("expected LambdaExpr, got %T", expr)
	}
	if len(lam.Params) != 1 || lam.Params[0] != "n" {
		t.Fatalf("unexpected params: %v", lam.Params)
	}
	if len(lam.Body) != 1 {
		t.Fatalf("expected 1 body expression, got %d", len(lam.Body))
	}
}

func TestLowerLambdaWithEmptyBodyIsNotASyntaxError(t *testing.T) {
	expr := lowerSource(t, "(lambda (x))")
	lam, ok := expr.(*types.LambdaExpr)
	if !ok {
		t.Fatalf("expected LambdaExpr, got %T", expr)
	}
	if len(lam.Body) != 0 {
		t.Fatalf("expected 0 body expressions, got %d", len(lam.Body))
	}
}

func TestLowerIfWithoutAlternative(t *testing.T) {
	expr := lowerSource(t, `(if #t "yes")`)
	ifExpr, ok := expr.(*types.IfExpr)
	if !ok {
		t.Fatalf("expected IfExpr, got %T", expr)
	}
	if ifExpr.No != nil {
		t.Fatalf("expected no alternative branch")
	}
}

func TestLowerQuotePrefix(t *testing.T) {
	expr := lowerSource(t, "'(+ 1 2)")
	q, ok := expr.(*types.QuoteExpr)
	if !ok {
		t.Fatalf("expected QuoteExpr, got %T", expr)
	}
	if _, ok := q.Inner.(*types.ListExpr); !ok {
		t.Fatalf("expected quoted inner ListExpr, got %T", q.Inner)
	}
}

func TestLowerEval(t *testing.T) {
	expr := lowerSource(t, "(eval (quote (+ 10 20)))")
	evalExpr, ok := expr.(*types.EvalExpr)
	if !ok {
		t.Fatalf("expected EvalExpr, got %T", expr)
	}
	if _, ok := evalExpr.Target.(*types.QuoteExpr); !ok {
		t.Fatalf("expected quoted target, got %T", evalExpr.Target)
	}
}
