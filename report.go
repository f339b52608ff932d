package prefixcode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/consensys/prefixcode/huffman"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Report is everything derived from one frequency table: the tree, the code of
// every symbol, the cost B(T) and the drawing of the tree.
type Report struct {
	Frequencies huffman.Frequencies
	Root        huffman.Node
	Codes       []huffman.Assignment // by ascending symbol
	Cost        int64
	Tree        string
}

// Run builds the tree for freqs and derives the report from it.
func Run(freqs huffman.Frequencies, opts ...huffman.Option) (*Report, error) {
	root, err := huffman.NewBuilder(opts...).Build(freqs)
	if err != nil {
		return nil, errors.Wrap(err, "building huffman tree")
	}

	table := huffman.NewCodeTable(root)
	r := &Report{
		Frequencies: freqs,
		Root:        root,
		Codes:       make([]huffman.Assignment, 0, len(table)),
		Cost:        huffman.TotalCost(root),
		Tree:        huffman.Render(root),
	}
	for _, s := range table.Symbols() {
		r.Codes = append(r.Codes, huffman.Assignment{Symbol: s, Frequency: freqs[s], Code: table[s]})
	}
	return r, nil
}

// RunText is Run over the symbol frequencies of text.
func RunText(text string, opts ...huffman.Option) (*Report, error) {
	return Run(huffman.CountSymbols(text), opts...)
}

// WriteTo prints the code table, the cost and the tree.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	fmt.Fprintln(cw, "Huffman code generation:")
	table := tablewriter.NewWriter(cw)
	table.SetHeader([]string{"Symbol", "Frequency", "Code"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, a := range r.Codes {
		table.Append([]string{huffman.EscapeSymbol(a.Symbol), strconv.FormatInt(a.Frequency, 10), a.Code})
	}
	table.Render()

	fmt.Fprintf(cw, "Cost of the tree is B(T)=%d\n", r.Cost)
	fmt.Fprintln(cw, "Tree:")
	io.WriteString(cw, r.Tree)

	return cw.n, cw.err
}

// countingWriter remembers the first error so the printing above can ignore them.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
