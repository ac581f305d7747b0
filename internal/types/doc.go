// Package types provides Abstract Syntax Tree (AST) node definitions for the
// interpreter's expression language.
//
// This package defines every expression type produced by expression
// lowering and consumed by the evaluator. Each type implements the Expr
// interface and represents either a literal, an identifier, a special form,
// or an unrecognised compound form evaluated as a procedure call.
//
// Expression Categories:
//
// Literals:
//   - NumberExpr: double-precision numeric literals (42, -10, 3.14)
//   - StringExpr: string literals ("hello")
//   - BoolExpr: boolean literals (#t, #f)
//
// Identifiers:
//   - IdentExpr: variable references (x, sq)
//
// Quotation:
//   - QuoteExpr: an un-evaluated AST fragment treated as data
//
// Special forms:
//   - DefinitionExpr: (define name value)
//   - LambdaExpr: (lambda (params...) body...)
//   - IfExpr: (if cond yes [no])
//   - EvalExpr: (eval expr)
//
// Everything else:
//   - ListExpr: an unrecognised compound form, evaluated as a call where the
//     first element is the procedure and the rest are arguments
//
// All expression nodes implement the Expr interface, which provides a
// String() method for debugging and a Position() method returning the
// node's stored SourcePos. The lowering pass in package parser does not
// fill positions in, so the nodes it produces report the zero SourcePos.
package types
