package grid

import (
	"fmt"

	"github.com/aretw0/z340/pkg/domain"
)

// Result is the outcome of a read-out.
type Result struct {
	Symbols []rune
	Emitted int
	Skipped int
}

// ReadOut walks block and returns its symbols in walk order.
// Cells inside exclude are skipped during the walk (the step is still counted)
// and appended afterwards in increasing column order.
func ReadOut(block []rune, w Walk, exclude *domain.Window) (Result, error) {
	if err := w.Validate(); err != nil {
		return Result{}, err
	}
	if len(block) != w.Len() {
		return Result{}, &domain.ConfigurationError{
			Field:  "length",
			Reason: fmt.Sprintf("block has %d symbols, grid expects %d", len(block), w.Len()),
		}
	}
	if err := checkWindow(w, exclude); err != nil {
		return Result{}, err
	}

	res := Result{Symbols: make([]rune, 0, len(block))}
	for _, c := range w.Coords() {
		if exclude != nil && exclude.Contains(c) {
			res.Skipped++
			continue
		}
		off := w.Offset(c)
		if off < 0 || off >= len(block) {
			return Result{}, &domain.IndexError{Op: "walk", Offset: off, Length: len(block)}
		}
		res.Symbols = append(res.Symbols, block[off])
		res.Emitted++
	}

	if exclude != nil {
		for col := exclude.FromCol; col <= exclude.ToCol; col++ {
			off := w.Offset(domain.Coord{Col: col, Row: exclude.Row})
			if off < 0 || off >= len(block) {
				return Result{}, &domain.IndexError{Op: "splice", Offset: off, Length: len(block)}
			}
			res.Symbols = append(res.Symbols, block[off])
		}
	}

	return res, nil
}

// Restore is the inverse of ReadOut: it puts every symbol of a read-out back
// in the grid cell it was taken from. It requires a walk that is a permutation.
func Restore(readout []rune, w Walk, exclude *domain.Window) ([]rune, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := checkWindow(w, exclude); err != nil {
		return nil, err
	}
	offsets := w.Offsets()
	if !IsPermutation(offsets, w.Len()) {
		return nil, &domain.ConfigurationError{Field: "step", Reason: "walk does not visit every cell exactly once"}
	}
	if len(readout) != w.Len() {
		return nil, &domain.ConfigurationError{
			Field:  "length",
			Reason: fmt.Sprintf("read-out has %d symbols, grid expects %d", len(readout), w.Len()),
		}
	}

	block := make([]rune, w.Len())
	i := 0
	for _, c := range w.Coords() {
		if exclude != nil && exclude.Contains(c) {
			continue
		}
		block[w.Offset(c)] = readout[i]
		i++
	}
	if exclude != nil {
		for col := exclude.FromCol; col <= exclude.ToCol; col++ {
			if i >= len(readout) {
				return nil, &domain.IndexError{Op: "restore", Offset: i, Length: len(readout)}
			}
			block[w.Offset(domain.Coord{Col: col, Row: exclude.Row})] = readout[i]
			i++
		}
	}
	return block, nil
}

func checkWindow(w Walk, exclude *domain.Window) error {
	if exclude == nil {
		return nil
	}
	if exclude.Row < 0 || exclude.Row >= w.Rows || exclude.FromCol < 0 || exclude.ToCol >= w.Cols || exclude.FromCol > exclude.ToCol {
		return &domain.ConfigurationError{
			Field:  "exclude",
			Reason: fmt.Sprintf("window row %d cols [%d,%d] outside %dx%d grid", exclude.Row, exclude.FromCol, exclude.ToCol, w.Rows, w.Cols),
		}
	}
	return nil
}
