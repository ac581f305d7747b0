// Package list implements the second stage of the interpreter pipeline:
// building a generic symbolic tree from a token sequence.
//
// The tree is untyped with respect to the language's special forms — that
// is the lowering pass's job (package parser). This stage only groups
// tokens by bracket nesting and threads the quotation flag produced by a
// leading "'" onto the Compound or Identifier node that follows it. An
// explicit (quote ...) form is left as an ordinary unquoted Compound; the
// lowering pass recognises it by its head symbol.
//
// Node Kinds:
//   - Compound: a parenthesised form, quoted or not, with ordered children
//   - Identifier: a bare symbol, quoted or not
//   - StringLiteral, NumericLiteral, BooleanLiteral: self-quoting leaves
//
// The builder is total: malformed bracket nesting never produces an error
// here, only a differently shaped tree for the lowering pass to reject.
package list
