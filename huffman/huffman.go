package huffman

import (
	"container/heap"

	"go.uber.org/zap"
)

// item is a queued subtree. seq is its insertion rank: leaves are queued by
// ascending symbol, then every merged node takes the next rank.
type item struct {
	node Node
	seq  int
}

// priorityQueue implements a min-heap of subtrees ordered by weight, then by seq,
// so equal weights leave the queue first in, first out.
type priorityQueue []item

func (pq *priorityQueue) Len() int { return len(*pq) }
func (pq *priorityQueue) Less(i, j int) bool {
	a, b := (*pq)[i], (*pq)[j]
	if a.node.Weight() != b.node.Weight() {
		return a.node.Weight() < b.node.Weight()
	}
	return a.seq < b.seq
}
func (pq *priorityQueue) Swap(i, j int) { (*pq)[i], (*pq)[j] = (*pq)[j], (*pq)[i] }

// Push adds an element to the priority queue.
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(item))
}

// Pop removes and returns the smallest element from the priority queue.
func (pq *priorityQueue) Pop() interface{} {
	n := len(*pq)
	it := (*pq)[n-1]
	*pq = (*pq)[:n-1]
	return it
}

// Builder builds Huffman trees. The zero value is not usable, see NewBuilder.
type Builder struct {
	tieBreaker TieBreaker
	log        *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithTieBreaker sets the source deciding equal-weight merges.
func WithTieBreaker(t TieBreaker) Option {
	return func(b *Builder) {
		if t != nil {
			b.tieBreaker = t
		}
	}
}

// WithLogger logs tie-break decisions at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// NewBuilder returns a Builder breaking ties with CryptoTieBreaker unless told otherwise.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		tieBreaker: CryptoTieBreaker(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildTree builds a tree with a default Builder.
func BuildTree(freqs Frequencies) (Node, error) {
	return NewBuilder().Build(freqs)
}

// Build returns the root of a Huffman tree over freqs. freqs must be non-empty and
// hold positive counts only; it is not retained.
// A single symbol table yields a lone *Leaf as root.
func (b *Builder) Build(freqs Frequencies) (Node, error) {
	if err := freqs.Validate(); err != nil {
		return nil, err
	}

	// Leaves go in by ascending symbol so a pinned TieBreaker reproduces the same tree.
	pq := make(priorityQueue, 0, len(freqs))
	for _, s := range freqs.Symbols() {
		pq = append(pq, item{node: &Leaf{Symbol: s, Count: freqs[s]}, seq: len(pq)})
	}
	heap.Init(&pq)
	seq := len(pq)

	// Build the tree by merging the two lightest nodes until one node remains.
	for pq.Len() > 1 {
		left := heap.Pop(&pq).(item).node
		right := heap.Pop(&pq).(item).node

		if left.Weight() == right.Weight() {
			swap := b.tieBreaker.Swap()
			b.log.Debug("equal weights, a different tree could be built",
				zap.Int64("weight", left.Weight()),
				zap.Bool("swapped", swap))
			if swap {
				left, right = right, left
			}
		}

		heap.Push(&pq, item{node: &Internal{
			Count: left.Weight() + right.Weight(),
			Left:  left,
			Right: right,
		}, seq: seq})
		seq++
	}

	return pq[0].node, nil
}
