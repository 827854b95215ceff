package transform

import "github.com/aretw0/z340/pkg/domain"

// Relocate removes the symbol at r.From and inserts it at r.To of the
// shortened sequence. The input is left untouched; a new slice of the same
// length is returned.
func Relocate(seq []rune, r domain.Relocation) ([]rune, error) {
	n := len(seq)
	if r.From < 0 || r.From >= n {
		return nil, &domain.IndexError{Op: "relocate", Offset: r.From, Length: n}
	}
	// After removal there are n-1 symbols and n insertion points.
	if r.To < 0 || r.To >= n {
		return nil, &domain.IndexError{Op: "relocate", Offset: r.To, Length: n}
	}

	moved := seq[r.From]
	rest := make([]rune, 0, n-1)
	rest = append(rest, seq[:r.From]...)
	rest = append(rest, seq[r.From+1:]...)

	out := make([]rune, 0, n)
	out = append(out, rest[:r.To]...)
	out = append(out, moved)
	out = append(out, rest[r.To:]...)
	return out, nil
}
