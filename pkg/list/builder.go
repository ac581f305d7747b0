package list

import (
	"strconv"

	"github.com/conneroisu/lisk/pkg/lexer"
)

// Builder is a recursive descent tree builder over a token sequence. It
// uses a single current-token cursor with an explicit advance and needs no
// backtracking: the grammar is fully determined by bracket nesting.
type Builder struct {
	tokens []lexer.Token
	pos    int
}

// New creates a Builder over a complete token sequence.
func New(tokens []lexer.Token) *Builder {
	return &Builder{tokens: tokens}
}

// Build parses the entire token stream into a single root Compound with
// Quoted always false. The builder is total: it never fails. Unmatched or
// extra closing brackets are silently skipped, and an unterminated
// compound form simply returns with whatever children it has collected so
// far.
func (b *Builder) Build() *Compound {
	root := NewCompound(1, 0, false, nil)
	b.parseChildren(root, true)

	return root
}

func (b *Builder) cur() lexer.Token {
	if b.pos < len(b.tokens) {
		return b.tokens[b.pos]
	}

	return lexer.Token{Type: lexer.TOKEN_EOF}
}

func (b *Builder) advance() lexer.Token {
	tok := b.cur()
	if b.pos < len(b.tokens) {
		b.pos++
	}

	return tok
}

// parseChildren appends nodes to node until it sees the matching closing
// paren (or, at the root, runs out of tokens). A pending quote applies to
// whichever child — compound or identifier — comes next, then is cleared;
// literals are self-quoting and clear it without consuming it.
func (b *Builder) parseChildren(node *Compound, isRoot bool) {
	quoteNext := false

	for {
		tok := b.cur()

		if tok.Type == lexer.TOKEN_EOF {
			return
		}

		if tok.Type == lexer.TOKEN_RPAREN {
			b.advance()
			if isRoot {
				continue
			}

			return
		}

		switch tok.Type {
		case lexer.TOKEN_LPAREN:
			b.advance()
			child := NewCompound(tok.Line, tok.Column, quoteNext, nil)
			b.parseChildren(child, false)
			quoteNext = false
			node.Children = append(node.Children, child)

		case lexer.TOKEN_QUOTE:
			b.advance()
			quoteNext = true

		case lexer.TOKEN_WORD:
			b.advance()
			node.Children = append(node.Children, wordNode(tok, quoteNext))
			quoteNext = false

		case lexer.TOKEN_STRING:
			b.advance()
			node.Children = append(node.Children, NewStringLiteral(tok.Line, tok.Column, tok.Literal))
			quoteNext = false

		case lexer.TOKEN_NUMBER:
			b.advance()
			f, _ := strconv.ParseFloat(tok.Literal, 64)
			node.Children = append(node.Children, NewNumericLiteral(tok.Line, tok.Column, f))
			quoteNext = false

		default:
			b.advance()
		}
	}
}

// wordNode classifies a WORD token as a boolean literal (#t / #f) or a
// plain identifier.
func wordNode(tok lexer.Token, quoted bool) Node {
	switch tok.Literal {
	case "#t":
		return NewBooleanLiteral(tok.Line, tok.Column, true)
	case "#f":
		return NewBooleanLiteral(tok.Line, tok.Column, false)
	default:
		return NewIdentifier(tok.Line, tok.Column, quoted, tok.Literal)
	}
}
