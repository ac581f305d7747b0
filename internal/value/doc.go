// Package value provides the runtime value system for the interpreter and
// the environment stack in which expressions are evaluated.
//
// Value Types:
//
//   - Number: double-precision floats
//   - Bool: #t / #f
//   - String: immutable text, printed quoted with no escape processing
//   - Procedure: the closed built-in set (+, -, *, /, =, <, >, and, or, not)
//     plus closure-less user-defined functions
//   - Quoted: an un-evaluated AST fragment held as data; eval is its inverse
//   - Undefined: the result of a definition, or of an if whose condition is
//     false and whose alternative branch is absent
//
// Procedures carry no captured lexical environment. A user-defined
// function's free identifiers resolve against the caller's live
// environment stack at call time, not against the environment where the
// function was defined.
//
// Environment:
//
// Stack is a flat ordered stack of frames, not a parent-pointer chain.
// Frame 0 is the global scope and is never popped. Lookup walks the stack
// from the innermost frame down; Set always writes into the topmost frame,
// so a local definition shadows an outer one without mutating it.
package value
