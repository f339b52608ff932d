package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// (4)
// ├── [0] a (2)
// └── [1] (2)
//     ├── [0] b (1)
//     └── [1] c (1)
func smallTree() Node {
	return &Internal{
		Count: 4,
		Left:  &Leaf{Symbol: 'a', Count: 2},
		Right: &Internal{
			Count: 2,
			Left:  &Leaf{Symbol: 'b', Count: 1},
			Right: &Leaf{Symbol: 'c', Count: 1},
		},
	}
}

func TestCodesPreOrder(t *testing.T) {
	var got []Assignment
	for a := range Codes(smallTree()) {
		got = append(got, a)
	}
	assert.Equal(t, []Assignment{
		{Symbol: 'a', Frequency: 2, Code: "0"},
		{Symbol: 'b', Frequency: 1, Code: "10"},
		{Symbol: 'c', Frequency: 1, Code: "11"},
	}, got)
}

func TestCodesRestartable(t *testing.T) {
	root := smallTree()
	assert.Equal(t, NewCodeTable(root), NewCodeTable(root))
	assert.Equal(t, []Symbol{'a', 'b', 'c'}, NewCodeTable(root).Symbols())
}

func TestCodesEarlyStop(t *testing.T) {
	n := 0
	for range Codes(smallTree()) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestCodesNil(t *testing.T) {
	assert.Empty(t, NewCodeTable(nil))
}

func TestCost(t *testing.T) {
	root := smallTree()
	assert.Equal(t, int64(2*1+1*2+1*2), TotalCost(root))
	// a subtree measured from deeper down
	assert.Equal(t, int64(1*3+1*3), Cost(root.(*Internal).Right, 2))
	assert.Equal(t, int64(5), TotalCost(&Leaf{Symbol: 'x', Count: 5}))
	assert.Equal(t, int64(10), Cost(&Leaf{Symbol: 'x', Count: 5}, 2))
	assert.Zero(t, TotalCost(nil))
}

func TestDecode(t *testing.T) {
	root := smallTree()
	for code, want := range map[string]Symbol{"0": 'a', "10": 'b', "11": 'c'} {
		s, err := Decode(root, code)
		require.NoError(t, err)
		assert.Equal(t, want, s)
	}

	for _, bad := range []string{"", "1", "00", "101", "2", "1x"} {
		_, err := Decode(root, bad)
		assert.ErrorIs(t, err, ErrInvalidCode, bad)
	}

	_, err := Decode(&Leaf{Symbol: 'x', Count: 1}, "")
	assert.ErrorIs(t, err, ErrInvalidCode)
	_, err = Decode(nil, "0")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
