package gridview

import (
	"github.com/aretw0/z340/pkg/domain"
	"github.com/aretw0/z340/pkg/grid"
	"github.com/aretw0/z340/pkg/transform"
)

// Cell is one grid position annotated for display.
type Cell struct {
	Step     int  // walk step at which the cell is read, -1 if never
	Symbol   rune // symbol after shift correction, 0 when no segment was given
	Excluded bool // inside the untransposed window
	Shifted  bool // receives the relocated symbol
}

// Table is a diagonal block laid out row by row.
type Table struct {
	Name  string
	Rows  int
	Cols  int
	Cells [][]Cell
}

// Build lays out spec as a table. segment may be nil to show step numbers only.
func Build(spec domain.BlockSpec, segment []rune) (Table, error) {
	w, err := grid.FromSpec(spec)
	if err != nil {
		return Table{}, err
	}

	block := segment
	if block != nil && spec.Shift != nil {
		block, err = transform.Relocate(segment, *spec.Shift)
		if err != nil {
			return Table{}, err
		}
	}
	if block != nil && len(block) != w.Len() {
		return Table{}, &domain.IndexError{Op: "table", Offset: len(block), Length: w.Len()}
	}

	steps := w.Steps()
	t := Table{Name: spec.Name, Rows: w.Rows, Cols: w.Cols, Cells: make([][]Cell, w.Rows)}
	for r := 0; r < w.Rows; r++ {
		t.Cells[r] = make([]Cell, w.Cols)
		for c := 0; c < w.Cols; c++ {
			coord := domain.Coord{Col: c, Row: r}
			off := w.Offset(coord)
			cell := Cell{Step: steps[off]}
			if block != nil {
				cell.Symbol = block[off]
			}
			if spec.Exclude != nil && spec.Exclude.Contains(coord) {
				cell.Excluded = true
			}
			if spec.Shift != nil && spec.Shift.To == off {
				cell.Shifted = true
			}
			t.Cells[r][c] = cell
		}
	}
	return t, nil
}
