package domain

import "fmt"

// BlockMode selects how a block is read out.
type BlockMode string

const (
	// ModeDiagonal reads the block as a grid using a diagonal walk.
	ModeDiagonal BlockMode = "diagonal"
	// ModeVerbatim returns the block unchanged.
	ModeVerbatim BlockMode = "verbatim"
)

// Coord is a cell of a grid, addressed by column first as the walk advances it.
type Coord struct {
	Col int
	Row int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Window is an inclusive range of columns on a single row.
// Cells inside it are skipped by the walk and appended afterwards in column order.
type Window struct {
	Row     int
	FromCol int
	ToCol   int
}

// Contains reports whether c lies inside the window.
func (w Window) Contains(c Coord) bool {
	return c.Row == w.Row && c.Col >= w.FromCol && c.Col <= w.ToCol
}

// Width is the number of cells covered by the window.
func (w Window) Width() int {
	return w.ToCol - w.FromCol + 1
}

// Relocation moves the symbol at offset From to offset To.
// To is interpreted against the sequence with the symbol already removed.
type Relocation struct {
	From int
	To   int
}

// Inverse returns the relocation that undoes r.
func (r Relocation) Inverse() Relocation {
	return Relocation{From: r.To, To: r.From}
}

// BlockSpec describes one segment of the ciphertext.
type BlockSpec struct {
	Name string
	Mode BlockMode

	// Length of the segment. Zero means "whatever is left" and is only
	// valid on the last block of a layout.
	Length int

	// Grid shape and walk steps. Only used by ModeDiagonal.
	Rows    int
	Cols    int
	ColStep int
	RowStep int

	// Shift is applied to the segment before it is walked.
	Shift *Relocation
	// Exclude is skipped by the walk and spliced in after it.
	Exclude *Window
}

// IsRemainder reports whether the block consumes the rest of the input.
func (b BlockSpec) IsRemainder() bool {
	return b.Length == 0
}

// BlockResult is the outcome of reading out a single block.
type BlockResult struct {
	Name   string
	Mode   BlockMode
	Input  string
	Output string

	// Emitted counts symbols appended by the walk itself, Skipped counts
	// steps that landed inside the exclusion window.
	Emitted int
	Skipped int
}
