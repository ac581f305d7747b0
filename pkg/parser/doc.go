// Package parser implements expression lowering: the third stage of the
// interpreter pipeline, turning the list builder's generic symbolic tree
// into the typed Expression AST the evaluator walks.
//
// Architecture:
//
// Lowering is a single recursive function, Lower, dispatching on the
// concrete list.Node type. A Compound node is checked against the
// language's five special forms by its head symbol before falling back to
// the generic call form:
//
//   - define: (define name value)
//   - lambda: (lambda (params...) body...)
//   - if: (if cond yes [no])
//   - quote: (quote expr), equivalent to the 'expr reader shorthand
//   - eval: (eval expr)
//
// A quoted Compound or Identifier lowers to a QuoteExpr wrapping the
// lowered (unquoted) inner form, regardless of whether the quotation came
// from a leading "'" or from an explicit quote form — both produce the same
// AST shape.
//
// Error Handling:
//
// Lowering errors are reported as LoweringError values carrying the exact
// message text the language's syntax-error contract requires, plus source
// position for callers that want it. The first error in a top-level form
// aborts lowering of that form; lowering does not attempt error recovery
// or multi-error aggregation within a single form.
//
// Usage Example:
//
//	tokens := lexer.New(`(define sq (lambda (n) (* n n)))`).Tokenize()
//	root := list.New(tokens).Build()
//	for _, form := range root.Children {
//	    expr, err := parser.Lower(form)
//	    if err != nil {
//	        fmt.Println("Syntax error:", err)
//	        continue
//	    }
//	    // expr is ready for the evaluator
//	}
package parser
