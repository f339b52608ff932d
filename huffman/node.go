package huffman

// Symbol is a single character of the alphabet being coded.
type Symbol = rune

// Node is a node of a Huffman tree. It is either a *Leaf or an *Internal.
type Node interface {
	// Weight is the number of occurrences covered by the subtree rooted at the node.
	Weight() int64
	isNode()
}

// Leaf holds one symbol of the alphabet and its frequency.
type Leaf struct {
	Symbol Symbol
	Count  int64
}

// Internal joins two subtrees. Left is reached with bit '0', Right with bit '1'.
// Count is always Left.Weight() + Right.Weight().
type Internal struct {
	Count int64
	Left  Node
	Right Node
}

func (l *Leaf) Weight() int64     { return l.Count }
func (n *Internal) Weight() int64 { return n.Count }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

// Leaves returns the number of leaves under n.
func Leaves(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		return 1
	case *Internal:
		return Leaves(n.Left) + Leaves(n.Right)
	}
	return 0
}
