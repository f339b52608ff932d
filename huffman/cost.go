package huffman

// Cost returns the weighted path length of the subtree n found at the given depth.
// A leaf costs max(1, depth) bits per occurrence, so a lone symbol still costs
// one bit per occurrence.
func Cost(n Node, depth int) int64 {
	switch n := n.(type) {
	case *Leaf:
		return int64(max(1, depth)) * n.Count
	case *Internal:
		return Cost(n.Left, depth+1) + Cost(n.Right, depth+1)
	}
	return 0
}

// TotalCost is the number of bits B(T) needed to encode every occurrence with the tree.
func TotalCost(root Node) int64 {
	return Cost(root, 0)
}
