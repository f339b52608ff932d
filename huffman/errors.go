package huffman

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyInput is returned when a tree is requested for an empty frequency table.
	ErrEmptyInput = errors.New("huffman: empty frequency table")

	// ErrInvalidCode is returned by Decode for a bit string that does not lead to a leaf.
	ErrInvalidCode = errors.New("huffman: invalid code")

	// ErrCountOverflow is returned when the frequencies, or the cost of a tree
	// over them, do not fit in an int64.
	ErrCountOverflow = errors.New("huffman: frequencies or tree cost overflow int64")
)

// InvalidFrequencyError reports a frequency that is not a positive integer.
type InvalidFrequencyError struct {
	Symbol Symbol
	Value  string // the offending value as it was given
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("huffman: invalid frequency %q for symbol '%s', must be a positive integer", e.Value, EscapeSymbol(e.Symbol))
}

// ParseCount parses the textual frequency of symbol. Anything but a positive
// base 10 integer yields an *InvalidFrequencyError.
func ParseCount(symbol Symbol, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, &InvalidFrequencyError{Symbol: symbol, Value: s}
	}
	return n, nil
}
