package domain

import "fmt"

// Layout is the ordered list of blocks that covers a ciphertext.
type Layout []BlockSpec

// FixedLength returns the number of symbols consumed by all non-remainder blocks.
func (l Layout) FixedLength() int {
	n := 0
	for _, b := range l {
		n += b.Length
	}
	return n
}

// Block returns the block with the given name.
func (l Layout) Block(name string) (BlockSpec, bool) {
	for _, b := range l {
		if b.Name == name {
			return b, true
		}
	}
	return BlockSpec{}, false
}

// Validate checks every block of the layout and returns all failures found.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return &ConfigurationError{Field: "blocks", Reason: "layout is empty"}
	}

	var errs []error
	seen := make(map[string]bool, len(l))

	for i, b := range l {
		if b.Name == "" {
			errs = append(errs, &ConfigurationError{Block: fmt.Sprintf("#%d", i), Field: "name", Reason: "required"})
		} else if seen[b.Name] {
			errs = append(errs, &ConfigurationError{Block: b.Name, Field: "name", Reason: "duplicate block name"})
		}
		seen[b.Name] = true

		if b.Length < 0 {
			errs = append(errs, &ConfigurationError{Block: b.Name, Field: "length", Reason: "must not be negative"})
		}
		if b.IsRemainder() && i != len(l)-1 {
			errs = append(errs, &ConfigurationError{Block: b.Name, Field: "length", Reason: "only the last block may take the remainder"})
		}

		errs = append(errs, b.validate()...)
	}

	if len(errs) == 1 {
		return errs[0]
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func (b BlockSpec) validate() []error {
	var errs []error
	fail := func(field, reason string) {
		errs = append(errs, &ConfigurationError{Block: b.Name, Field: field, Reason: reason})
	}

	switch b.Mode {
	case ModeVerbatim:
		if b.Shift != nil || b.Exclude != nil {
			fail("mode", "verbatim blocks take no shift or exclusion window")
		}
		return errs
	case ModeDiagonal:
	default:
		fail("mode", fmt.Sprintf("unknown mode %q", b.Mode))
		return errs
	}

	if b.IsRemainder() {
		fail("length", "diagonal blocks need a fixed length")
	}
	if b.Rows <= 0 || b.Cols <= 0 {
		fail("grid", fmt.Sprintf("dimensions %dx%d must be positive", b.Rows, b.Cols))
		return errs
	}
	if b.Rows*b.Cols != b.Length {
		fail("grid", fmt.Sprintf("%d rows x %d cols does not cover block length %d", b.Rows, b.Cols, b.Length))
	}
	if b.ColStep <= 0 || b.RowStep <= 0 {
		fail("step", "column and row steps must be positive")
	}

	if w := b.Exclude; w != nil {
		if w.Row < 0 || w.Row >= b.Rows {
			fail("exclude", fmt.Sprintf("row %d outside [0,%d)", w.Row, b.Rows))
		}
		if w.FromCol < 0 || w.ToCol >= b.Cols || w.FromCol > w.ToCol {
			fail("exclude", fmt.Sprintf("columns [%d,%d] outside [0,%d)", w.FromCol, w.ToCol, b.Cols))
		}
	}

	if s := b.Shift; s != nil && b.Length > 0 {
		if s.From < 0 || s.From >= b.Length || s.To < 0 || s.To >= b.Length {
			fail("shift", fmt.Sprintf("relocation %d->%d outside [0,%d)", s.From, s.To, b.Length))
		}
	}

	return errs
}
