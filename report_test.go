package prefixcode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/consensys/prefixcode/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClassic(t *testing.T) {
	r, err := Run(huffman.Frequencies{'c': 5, 'd': 9, 'a': 12, 'b': 13, 'e': 16, 'f': 45},
		huffman.WithTieBreaker(huffman.NeverSwap))
	require.NoError(t, err)

	assert.Equal(t, int64(224), r.Cost)
	require.Len(t, r.Codes, 6)
	for i, s := range "abcdef" {
		assert.Equal(t, s, r.Codes[i].Symbol)
	}
	assert.Equal(t, "0", r.Codes[5].Code, "f is the most frequent symbol")
	assert.Equal(t, huffman.Render(r.Root), r.Tree)
}

func TestRunTextWriteTo(t *testing.T) {
	r, err := RunText("aaaaaaaaaabbbbbbbbbbccccddddef\n", huffman.WithTieBreaker(huffman.SeededTieBreaker(3)))
	require.NoError(t, err)

	var bb bytes.Buffer
	n, err := r.WriteTo(&bb)
	require.NoError(t, err)
	assert.Equal(t, int64(bb.Len()), n)

	out := bb.String()
	assert.Contains(t, out, "Symbol")
	assert.Contains(t, out, "Frequency")
	assert.Contains(t, out, "Cost of the tree is B(T)=")
	assert.Contains(t, out, r.Tree)
	for _, a := range r.Codes {
		assert.Contains(t, out, a.Code)
	}
	assert.Contains(t, out, `\n`)
}

func TestRunEmpty(t *testing.T) {
	r, err := RunText("")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteToError(t *testing.T) {
	r, err := RunText("abc")
	require.NoError(t, err)
	_, err = r.WriteTo(failingWriter{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disk full"))
}
