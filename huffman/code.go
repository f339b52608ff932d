package huffman

import (
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Assignment is the code given to one symbol of the tree.
type Assignment struct {
	Symbol    Symbol
	Frequency int64
	Code      string // '0' for every left branch, '1' for every right branch
}

// Codes yields the assignment of every leaf under root, depth first, left before right.
// A tree made of a single leaf gets the code "0".
// The sequence can be ranged over any number of times.
func Codes(root Node) iter.Seq[Assignment] {
	return func(yield func(Assignment) bool) {
		if root == nil {
			return
		}
		if l, ok := root.(*Leaf); ok {
			yield(Assignment{Symbol: l.Symbol, Frequency: l.Count, Code: "0"})
			return
		}
		walk(root, make([]byte, 0, 16), yield)
	}
}

// walk reports whether the traversal should go on.
func walk(n Node, path []byte, yield func(Assignment) bool) bool {
	switch n := n.(type) {
	case *Leaf:
		return yield(Assignment{Symbol: n.Symbol, Frequency: n.Count, Code: string(path)})
	case *Internal:
		return walk(n.Left, append(path, '0'), yield) &&
			walk(n.Right, append(path, '1'), yield)
	}
	return true
}

// CodeTable maps every symbol of a tree to its code.
type CodeTable map[Symbol]string

// NewCodeTable collects the codes of the tree under root.
func NewCodeTable(root Node) CodeTable {
	table := make(CodeTable)
	for a := range Codes(root) {
		table[a.Symbol] = a.Code
	}
	return table
}

// Symbols returns the symbols of the table in ascending order.
func (t CodeTable) Symbols() []Symbol {
	symbols := maps.Keys(t)
	slices.Sort(symbols)
	return symbols
}

// Decode follows code from root down to a leaf and returns its symbol.
// The whole code must be consumed exactly when the leaf is reached.
func Decode(root Node, code string) (Symbol, error) {
	if root == nil {
		return 0, errors.WithStack(ErrEmptyInput)
	}
	if l, ok := root.(*Leaf); ok {
		if code != "0" {
			return 0, errors.Wrapf(ErrInvalidCode, "%q on a single symbol tree", code)
		}
		return l.Symbol, nil
	}

	cur := root
	for i := 0; i < len(code); i++ {
		in, ok := cur.(*Internal)
		if !ok {
			return 0, errors.Wrapf(ErrInvalidCode, "%q has trailing bits after position %d", code, i)
		}
		switch code[i] {
		case '0':
			cur = in.Left
		case '1':
			cur = in.Right
		default:
			return 0, errors.Wrapf(ErrInvalidCode, "%q has a non binary digit at position %d", code, i)
		}
	}
	l, ok := cur.(*Leaf)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidCode, "%q ends on an internal node", code)
	}
	return l.Symbol, nil
}
