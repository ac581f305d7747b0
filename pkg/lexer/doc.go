// Package lexer provides lexical analysis for the interpreter's expression
// language.
//
// The lexer is the first stage of the interpreter pipeline, converting raw
// source text into a flat token sequence consumed by the list builder.
//
// Key Features:
//
// Token Recognition:
//   - Grouping: "(" and "[" both open a list, ")" and "]" both close one;
//     bracket parity is not enforced at this stage
//   - Quotation: "'" emits a standalone quote marker
//   - Words: any other maximal run of non-delimiter, non-whitespace
//     characters; later classified as a NumericLiteral if it parses as a
//     float64, otherwise a bare Word (including #t / #f)
//   - Strings: double-quoted, with no escape processing whatsoever
//
// Comment Handling:
//   - Single-line comments starting with ';', terminated by newline
//
// Position Tracking:
//   - Line (1-based) and column (0-based) on every token, for diagnostics
//
// The lexer never fails. Malformed input — an unterminated string, an
// unmatched bracket — produces a shorter or differently shaped token
// sequence. The list builder is total as well, so rejecting it is the
// lowering pass's job.
//
// Usage Example:
//
//	l := lexer.New(`(+ 1 2)`)
//	for _, tok := range l.Tokenize() {
//	    fmt.Printf("%s: %q\n", tok.Type, tok.Literal)
//	}
package lexer
