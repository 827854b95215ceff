package cli

import (
	"fmt"
	"slices"

	"github.com/aretw0/z340/internal/assembler"
	"github.com/aretw0/z340/pkg/corpus"
	"github.com/aretw0/z340/pkg/domain"
	"github.com/aretw0/z340/pkg/grid"
)

// Check is the outcome of one validation step.
type Check struct {
	Block  string
	Name   string
	Passed bool
	Detail string
}

// ValidateLayout checks layout and the reversibility of every block against ciphertext.
// It stops early only when the layout itself is invalid.
func ValidateLayout(layout domain.Layout, ciphertext string) ([]Check, error) {
	asm, err := assembler.New(layout)
	if err != nil {
		return nil, err
	}
	segments, err := asm.Split([]rune(ciphertext))
	if err != nil {
		return nil, err
	}

	var checks []Check
	for i, spec := range layout {
		if spec.Mode == domain.ModeDiagonal {
			w, err := grid.FromSpec(spec)
			if err != nil {
				return nil, err
			}
			perm := grid.IsPermutation(w.Offsets(), w.Len())
			checks = append(checks, Check{
				Block:  spec.Name,
				Name:   "walk visits every cell once",
				Passed: perm,
				Detail: fmt.Sprintf("%dx%d, steps +%d/+%d", w.Rows, w.Cols, w.ColStep, w.RowStep),
			})
		}

		res, err := assembler.ReadBlock(spec, segments[i])
		if err != nil {
			checks = append(checks, Check{Block: spec.Name, Name: "read-out", Detail: err.Error()})
			continue
		}
		restored, err := assembler.RestoreBlock(spec, []rune(res.Output))
		check := Check{Block: spec.Name, Name: "read-out round-trips"}
		switch {
		case err != nil:
			check.Detail = err.Error()
		case !slices.Equal(restored, segments[i]):
			check.Detail = "restored block differs from input"
		default:
			check.Passed = true
			check.Detail = fmt.Sprintf("%d symbols", len(segments[i]))
		}
		checks = append(checks, check)
	}
	return checks, nil
}

// RunValidate validates the built-in layout and prints one line per check.
func RunValidate(opts Options) error {
	cfg, err := opts.resolve()
	if err != nil {
		return err
	}
	_, stdout, stderr := opts.streams()
	logger := createLogger(cfg, stderr)

	checks, err := ValidateLayout(corpus.Z340Layout(), corpus.Z340)
	if err != nil {
		return err
	}

	failed := 0
	for _, c := range checks {
		mark := "ok  "
		if !c.Passed {
			mark = "FAIL"
			failed++
		}
		fmt.Fprintf(stdout, "%s %-7s %-28s %s\n", mark, c.Block, c.Name, c.Detail)
	}
	logger.Debug("validation finished", "checks", len(checks), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}
