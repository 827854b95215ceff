package grid

import (
	"testing"

	"github.com/aretw0/z340/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markers returns n distinct runes so that every position of a block is identifiable.
func markers(n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = rune(0x100 + i)
	}
	return out
}

func TestReadOut_Bijection(t *testing.T) {
	block := markers(153)

	res, err := ReadOut(block, z340Walk, nil)
	require.NoError(t, err)

	assert.Equal(t, 153, res.Emitted)
	assert.Zero(t, res.Skipped)
	require.Len(t, res.Symbols, 153)

	offsets := z340Walk.Offsets()
	for i, r := range res.Symbols {
		assert.Equal(t, block[offsets[i]], r)
	}

	restored, err := Restore(res.Symbols, z340Walk, nil)
	require.NoError(t, err)
	assert.Equal(t, block, restored)
}

func TestReadOut_ExclusionWindow(t *testing.T) {
	block := markers(153)
	window := &domain.Window{Row: 0, FromCol: 11, ToCol: 16}

	res, err := ReadOut(block, z340Walk, window)
	require.NoError(t, err)

	require.Len(t, res.Symbols, 153)
	assert.Equal(t, 147, res.Emitted)
	assert.Equal(t, 6, res.Skipped)
	assert.Equal(t, block[11:17], res.Symbols[147:153])
	for _, r := range res.Symbols[:147] {
		assert.NotContains(t, block[11:17], r)
	}

	restored, err := Restore(res.Symbols, z340Walk, window)
	require.NoError(t, err)
	assert.Equal(t, block, restored)
}

func TestReadOut_SmallGrid(t *testing.T) {
	// 3x4 grid, offsets:
	//   A B C D
	//   E F G H
	//   I J K L
	w := Walk{Rows: 3, Cols: 4, ColStep: 1, RowStep: 1, Count: 12}
	res, err := ReadOut([]rune("ABCDEFGHIJKL"), w, nil)
	require.NoError(t, err)
	assert.Equal(t, "AFKDEJCHIBGL", string(res.Symbols))
}

func TestReadOut_Errors(t *testing.T) {
	tests := []struct {
		name    string
		block   []rune
		walk    Walk
		window  *domain.Window
		wantErr error
	}{
		{"Short Block", markers(100), z340Walk, nil, domain.ErrConfiguration},
		{"Bad Walk", markers(153), Walk{Rows: 9, Cols: 16, ColStep: 2, RowStep: 1, Count: 153}, nil, domain.ErrConfiguration},
		{"Window Past Last Column", markers(153), z340Walk, &domain.Window{Row: 0, FromCol: 11, ToCol: 17}, domain.ErrConfiguration},
		{"Window Row Out Of Grid", markers(153), z340Walk, &domain.Window{Row: 9, FromCol: 0, ToCol: 1}, domain.ErrConfiguration},
		{"Inverted Window", markers(153), z340Walk, &domain.Window{Row: 0, FromCol: 5, ToCol: 4}, domain.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadOut(tt.block, tt.walk, tt.window)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRestore_RejectsNonPermutation(t *testing.T) {
	w := Walk{Rows: 2, Cols: 4, ColStep: 2, RowStep: 1, Count: 8}
	_, err := Restore(markers(8), w, nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = Restore(markers(10), z340Walk, nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
