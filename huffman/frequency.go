package huffman

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Frequencies maps every symbol of an alphabet to its number of occurrences.
type Frequencies map[Symbol]int64

// CountSymbols returns the number of occurrences of every distinct symbol in text.
// An empty text yields an empty table. Bytes that are not valid UTF-8 are all
// counted as utf8.RuneError, so such a text does not round-trip through the codes.
func CountSymbols(text string) Frequencies {
	freqs := make(Frequencies)
	for _, s := range text {
		freqs[s]++
	}
	return freqs
}

// CountReader is CountSymbols over the runes read from r until io.EOF.
// Invalid UTF-8 is counted as utf8.RuneError, as in CountSymbols.
func CountReader(r io.Reader) (Frequencies, error) {
	br, ok := r.(io.RuneReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	freqs := make(Frequencies)
	for {
		s, _, err := br.ReadRune()
		if err == io.EOF {
			return freqs, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "huffman: reading text")
		}
		freqs[s]++
	}
}

// Add adds count occurrences of symbol.
func (f Frequencies) Add(symbol Symbol, count int64) error {
	if count <= 0 {
		return &InvalidFrequencyError{Symbol: symbol, Value: strconv.FormatInt(count, 10)}
	}
	if f[symbol] > math.MaxInt64-count {
		return errors.WithStack(ErrCountOverflow)
	}
	f[symbol] += count
	return nil
}

// Symbols returns the symbols of the table in ascending order.
func (f Frequencies) Symbols() []Symbol {
	symbols := maps.Keys(f)
	slices.Sort(symbols)
	return symbols
}

// Total returns the sum of all counts.
func (f Frequencies) Total() int64 {
	var total int64
	for _, c := range f {
		total += c
	}
	return total
}

// Validate checks that the table can be turned into a tree: it must not be empty,
// every count must be positive, and both the counts and the cost B(T) of any tree
// over them must fit in an int64. No leaf sits deeper than len(f)-1, so the cost
// is at most total × max(1, len(f)-1).
func (f Frequencies) Validate() error {
	if len(f) == 0 {
		return errors.WithStack(ErrEmptyInput)
	}
	var total int64
	for _, s := range f.Symbols() {
		c := f[s]
		if c <= 0 {
			return &InvalidFrequencyError{Symbol: s, Value: strconv.FormatInt(c, 10)}
		}
		if total > math.MaxInt64-c {
			return errors.WithStack(ErrCountOverflow)
		}
		total += c
	}
	if depth := int64(max(1, len(f)-1)); total > math.MaxInt64/depth {
		return errors.WithStack(ErrCountOverflow)
	}
	return nil
}
