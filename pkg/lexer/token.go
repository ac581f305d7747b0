package lexer

import "fmt"

// TokenType represents the classification of lexical tokens. The token set
// is deliberately tiny: the language is fully parenthesised prefix
// notation, so there is no need for a keyword table or an operator
// precedence grammar at the lexical level.
type TokenType int

const (
	TOKEN_EOF TokenType = iota // End of input

	TOKEN_LPAREN // "(" or "[" — both open a list
	TOKEN_RPAREN // ")" or "]" — both close a list
	TOKEN_QUOTE  // "'" — quotes the form that follows

	TOKEN_WORD   // a bare symbol, e.g. define, sq, +, #t, #f
	TOKEN_STRING // a double-quoted string literal, no escape processing
	TOKEN_NUMBER // a literal that parses as a float64
)

// Token is a complete lexical unit: its classification, literal text, and
// source position for diagnostics.
type Token struct {
	Type    TokenType
	Literal string
	Line    int // 1-based
	Column  int // 0-based
}

var tokenNames = map[TokenType]string{
	TOKEN_EOF:    "EOF",
	TOKEN_LPAREN: "LPAREN",
	TOKEN_RPAREN: "RPAREN",
	TOKEN_QUOTE:  "QUOTE",
	TOKEN_WORD:   "WORD",
	TOKEN_STRING: "STRING",
	TOKEN_NUMBER: "NUMBER",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TokenType(%d)", int(t))
}
