// Package list builds the generic symbolic tree that sits between
// tokenisation and expression lowering: a recursive tree of nodes, each
// carrying a quoted flag, that has not yet been checked against the
// language's special forms.
package list

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conneroisu/lisk/internal/types"
)

// Node is any node of the generic symbolic tree produced by the list
// builder and consumed by expression lowering.
type Node interface {
	String() string
	Position() types.SourcePos
	listNode()
}

type base struct {
	pos types.SourcePos
}

func (b base) Position() types.SourcePos { return b.pos }

// Compound is a parenthesised form: `(` quoted? then zero or more children
// then `)`. The root of every parse is always an unquoted Compound.
type Compound struct {
	base
	Quoted   bool
	Children []Node
}

// NewCompound constructs a Compound at the given position.
func NewCompound(line, column int, quoted bool, children []Node) *Compound {
	return &Compound{base: base{pos: types.SourcePos{Line: line, Column: column}}, Quoted: quoted, Children: children}
}

func (n *Compound) listNode() {}
func (n *Compound) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	s := fmt.Sprintf("(%s)", strings.Join(parts, " "))
	if n.Quoted {
		return "'" + s
	}

	return s
}

// Identifier is a bare symbol, not recognised as a number or boolean
// literal by the builder.
type Identifier struct {
	base
	Quoted bool
	Name   string
}

// NewIdentifier constructs an Identifier at the given position.
func NewIdentifier(line, column int, quoted bool, name string) *Identifier {
	return &Identifier{base: base{pos: types.SourcePos{Line: line, Column: column}}, Quoted: quoted, Name: name}
}

func (n *Identifier) listNode() {}
func (n *Identifier) String() string {
	if n.Quoted {
		return "'" + n.Name
	}

	return n.Name
}

// StringLiteral is a self-quoting string leaf.
type StringLiteral struct {
	base
	Value string
}

// NewStringLiteral constructs a StringLiteral at the given position.
func NewStringLiteral(line, column int, value string) *StringLiteral {
	return &StringLiteral{base: base{pos: types.SourcePos{Line: line, Column: column}}, Value: value}
}

func (n *StringLiteral) listNode()      {}
func (n *StringLiteral) String() string { return fmt.Sprintf("%q", n.Value) }

// NumericLiteral is a self-quoting numeric leaf.
type NumericLiteral struct {
	base
	Value float64
}

// NewNumericLiteral constructs a NumericLiteral at the given position.
func NewNumericLiteral(line, column int, value float64) *NumericLiteral {
	return &NumericLiteral{base: base{pos: types.SourcePos{Line: line, Column: column}}, Value: value}
}

func (n *NumericLiteral) listNode()      {}
func (n *NumericLiteral) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// BooleanLiteral is a self-quoting boolean leaf, produced from the bare
// words #t and #f.
type BooleanLiteral struct {
	base
	Value bool
}

// NewBooleanLiteral constructs a BooleanLiteral at the given position.
func NewBooleanLiteral(line, column int, value bool) *BooleanLiteral {
	return &BooleanLiteral{base: base{pos: types.SourcePos{Line: line, Column: column}}, Value: value}
}

func (n *BooleanLiteral) listNode() {}
func (n *BooleanLiteral) String() string {
	if n.Value {
		return "#t"
	}

	return "#f"
}
