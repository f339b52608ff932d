package huffman

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Render draws the tree under root, one node per line. Internal nodes read
// "(<count>)", leaves "<symbol> (<count>)". Children are indented under their
// parent and tagged [0] for the left branch and [1] for the right one.
func Render(root Node) string {
	if root == nil {
		return ""
	}
	tree := treeprint.NewWithRoot(label(root))
	if in, ok := root.(*Internal); ok {
		addChildren(tree, in)
	}
	return tree.String()
}

func addChildren(branch treeprint.Tree, n *Internal) {
	for bit, child := range [2]Node{n.Left, n.Right} {
		switch c := child.(type) {
		case *Leaf:
			branch.AddMetaNode(bit, label(c))
		case *Internal:
			addChildren(branch.AddMetaBranch(bit, label(c)), c)
		}
	}
}

func label(n Node) string {
	if l, ok := n.(*Leaf); ok {
		return fmt.Sprintf("%s (%d)", EscapeSymbol(l.Symbol), l.Count)
	}
	return fmt.Sprintf("(%d)", n.Weight())
}

var symbolEscaper = strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`)

// EscapeSymbol renders s on a single line: newline, tab and carriage return
// become the two character sequences \n, \t and \r.
func EscapeSymbol(s Symbol) string {
	return symbolEscaper.Replace(string(s))
}
