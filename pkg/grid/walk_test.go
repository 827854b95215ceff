package grid

import (
	"testing"

	"github.com/aretw0/z340/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var z340Walk = Walk{Rows: 9, Cols: 17, ColStep: 2, RowStep: 1, Count: 153}

func TestWalk_Z340IsPermutation(t *testing.T) {
	offsets := z340Walk.Offsets()

	require.Len(t, offsets, 153)
	assert.True(t, IsPermutation(offsets, 153))

	seen := make(map[int]int)
	for _, off := range offsets {
		seen[off]++
	}
	for off := 0; off < 153; off++ {
		assert.Equal(t, 1, seen[off], "offset %d", off)
	}
}

func TestWalk_Coords(t *testing.T) {
	coords := z340Walk.Coords()

	assert.Equal(t, []domain.Coord{
		{Col: 0, Row: 0},
		{Col: 2, Row: 1},
		{Col: 4, Row: 2},
		{Col: 6, Row: 3},
	}, coords[:4])
	// Columns wrap modulo 17, rows modulo 9.
	assert.Equal(t, domain.Coord{Col: 1, Row: 0}, coords[9])
	assert.Equal(t, domain.Coord{Col: 0, Row: 8}, coords[17])
	assert.Equal(t, domain.Coord{Col: 15, Row: 8}, coords[152])
}

func TestWalk_CountBasedTermination(t *testing.T) {
	// 2x4 with column step 2 revisits cells: the walk does not notice.
	w := Walk{Rows: 2, Cols: 4, ColStep: 2, RowStep: 1, Count: 8}
	offsets := w.Offsets()

	assert.Len(t, offsets, 8)
	assert.False(t, IsPermutation(offsets, 8))
	assert.Equal(t, []int{0, 6, 0, 6, 0, 6, 0, 6}, offsets)
}

func TestWalk_Steps(t *testing.T) {
	steps := z340Walk.Steps()

	assert.Equal(t, 0, steps[0])
	assert.Equal(t, 1, steps[17+2])
	assert.Equal(t, 95, steps[88])

	w := Walk{Rows: 2, Cols: 4, ColStep: 2, RowStep: 1, Count: 8}
	assert.Equal(t, []int{0, -1, -1, -1, -1, -1, 1, -1}, w.Steps())
}

func TestWalk_Validate(t *testing.T) {
	tests := []struct {
		name string
		walk Walk
	}{
		{"Count Mismatch", Walk{Rows: 9, Cols: 17, ColStep: 2, RowStep: 1, Count: 152}},
		{"Zero Rows", Walk{Rows: 0, Cols: 17, ColStep: 2, RowStep: 1, Count: 0}},
		{"Zero Step", Walk{Rows: 9, Cols: 17, ColStep: 0, RowStep: 1, Count: 153}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.walk.Validate()
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
	assert.NoError(t, z340Walk.Validate())
}

func TestFromSpec(t *testing.T) {
	w, err := FromSpec(domain.BlockSpec{Name: "b", Mode: domain.ModeDiagonal, Length: 153, Rows: 9, Cols: 17, ColStep: 2, RowStep: 1})
	require.NoError(t, err)
	assert.Equal(t, z340Walk, w)

	_, err = FromSpec(domain.BlockSpec{Name: "tail", Mode: domain.ModeVerbatim})
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = FromSpec(domain.BlockSpec{Name: "b", Mode: domain.ModeDiagonal, Length: 150, Rows: 9, Cols: 17, ColStep: 2, RowStep: 1})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, IsPermutation([]int{2, 0, 1}, 3))
	assert.False(t, IsPermutation([]int{0, 1}, 3))
	assert.False(t, IsPermutation([]int{0, 1, 3}, 3))
	assert.False(t, IsPermutation([]int{0, -1, 2}, 3))
}
