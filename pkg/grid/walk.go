package grid

import (
	"fmt"

	"github.com/aretw0/z340/pkg/domain"
)

// Walk is a diagonal traversal over a Rows x Cols grid.
type Walk struct {
	Rows    int
	Cols    int
	ColStep int
	RowStep int
	Count   int
}

// FromSpec builds the walk described by a diagonal block.
func FromSpec(b domain.BlockSpec) (Walk, error) {
	if b.Mode != domain.ModeDiagonal {
		return Walk{}, &domain.ConfigurationError{Block: b.Name, Field: "mode", Reason: fmt.Sprintf("%q blocks have no grid", b.Mode)}
	}
	w := Walk{
		Rows:    b.Rows,
		Cols:    b.Cols,
		ColStep: b.ColStep,
		RowStep: b.RowStep,
		Count:   b.Length,
	}
	if err := w.Validate(); err != nil {
		return Walk{}, err
	}
	return w, nil
}

// Len is the number of cells in the grid.
func (w Walk) Len() int {
	return w.Rows * w.Cols
}

// Validate rejects walks whose grid does not match the requested count.
func (w Walk) Validate() error {
	if w.Rows <= 0 || w.Cols <= 0 {
		return &domain.ConfigurationError{Field: "grid", Reason: fmt.Sprintf("dimensions %dx%d must be positive", w.Rows, w.Cols)}
	}
	if w.Len() != w.Count {
		return &domain.ConfigurationError{Field: "grid", Reason: fmt.Sprintf("%d rows x %d cols does not cover %d cells", w.Rows, w.Cols, w.Count)}
	}
	if w.ColStep <= 0 || w.RowStep <= 0 {
		return &domain.ConfigurationError{Field: "step", Reason: "column and row steps must be positive"}
	}
	return nil
}

// Coords returns the Count cells visited by the walk, in order.
func (w Walk) Coords() []domain.Coord {
	coords := make([]domain.Coord, 0, w.Count)
	col, row := 0, 0
	for len(coords) < w.Count {
		coords = append(coords, domain.Coord{Col: col, Row: row})
		col = (col + w.ColStep) % w.Cols
		row = (row + w.RowStep) % w.Rows
	}
	return coords
}

// Offset converts a cell to its linear position in the block.
func (w Walk) Offset(c domain.Coord) int {
	return c.Row*w.Cols + c.Col
}

// Offsets returns the linear position of every visited cell, in walk order.
func (w Walk) Offsets() []int {
	coords := w.Coords()
	offsets := make([]int, len(coords))
	for i, c := range coords {
		offsets[i] = w.Offset(c)
	}
	return offsets
}

// Steps maps every linear offset to the step at which the walk first visits it.
// Cells never visited hold -1.
func (w Walk) Steps() []int {
	steps := make([]int, w.Len())
	for i := range steps {
		steps[i] = -1
	}
	for i, off := range w.Offsets() {
		if off >= 0 && off < len(steps) && steps[off] < 0 {
			steps[off] = i
		}
	}
	return steps
}

// IsPermutation reports whether offsets contains each of 0..n-1 exactly once.
func IsPermutation(offsets []int, n int) bool {
	if len(offsets) != n {
		return false
	}
	seen := make([]bool, n)
	for _, off := range offsets {
		if off < 0 || off >= n || seen[off] {
			return false
		}
		seen[off] = true
	}
	return true
}
