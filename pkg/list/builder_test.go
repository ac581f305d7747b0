package list

import (
	"testing"

	"github.com/conneroisu/lisk/pkg/lexer"
)

func build(t *testing.T, input string) *Compound {
	t.Helper()
	tokens := lexer.New(input).Tokenize()

	return New(tokens).Build()
}

func TestBuildSimpleCall(t *testing.T) {
	root := build(t, "(+ 1 2)")

	if len(root.Children) != 1 {
		t.Fatalf("expected 1 top-level form, got %d", len(root.Children))
	}

	call, ok := root.Children[0].(*Compound)
	if !ok {
		t.Fatalf("expected Compound, got %T", root.Children[0])
	}
	if call.Quoted {
		t.Fatalf("top-level call should not be quoted")
	}
	if len(call.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(call.Children))
	}

	head, ok := call.Children[0].(*Identifier)
	if !ok || head.Name != "+" {
		t.Fatalf("expected identifier '+', got %#v", call.Children[0])
	}
}

func TestBuildQuotePrefix(t *testing.T) {
	root := build(t, "'(+ 1 2)")

	call, ok := root.Children[0].(*Compound)
	if !ok {
		t.Fatalf("expected Compound, got %T", root.Children[0])
	}
	if !call.Quoted {
		t.Fatalf("expected quoted compound")
	}
}

func TestBuildQuotedIdentifier(t *testing.T) {
	root := build(t, "'foo")

	ident, ok := root.Children[0].(*Identifier)
	if !ok {
		t.Fatalf("expected Identifier, got %T", root.Children[0])
	}
	if !ident.Quoted || ident.Name != "foo" {
		t.Fatalf("unexpected identifier: %#v", ident)
	}
}

func TestBuildBooleanLiterals(t *testing.T) {
	root := build(t, "#t #f")

	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top-level forms, got %d", len(root.Children))
	}

	first, ok := root.Children[0].(*BooleanLiteral)
	if !ok || !first.Value {
		t.Fatalf("expected #t, got %#v", root.Children[0])
	}

	second, ok := root.Children[1].(*BooleanLiteral)
	if !ok || second.Value {
		t.Fatalf("expected #f, got %#v", root.Children[1])
	}
}

func TestBuildNestedForms(t *testing.T) {
	root := build(t, `(define sq (lambda (n) (* n n)))`)

	if len(root.Children) != 1 {
		t.Fatalf("expected 1 top-level form, got %d", len(root.Children))
	}

	def, ok := root.Children[0].(*Compound)
	if !ok || len(def.Children) != 3 {
		t.Fatalf("unexpected define form: %#v", root.Children[0])
	}
}

func TestBuildUnterminatedFormIsShorterNotError(t *testing.T) {
	root := build(t, "(+ 1 2")

	if len(root.Children) != 1 {
		t.Fatalf("expected 1 top-level form, got %d", len(root.Children))
	}
	call := root.Children[0].(*Compound)
	if len(call.Children) != 3 {
		t.Fatalf("expected 3 children despite missing close paren, got %d", len(call.Children))
	}
}
