package assembler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/z340/pkg/domain"
	"github.com/aretw0/z340/pkg/grid"
	"github.com/aretw0/z340/pkg/transform"
)

// Assembler cuts a ciphertext into the blocks of a layout, reads each one
// out and concatenates the results.
type Assembler struct {
	layout domain.Layout
	hooks  domain.Hooks
	logger *slog.Logger
	now    func() time.Time
}

// Option defines a functional option for configuring the Assembler.
type Option func(*Assembler)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.Hooks) Option {
	return func(a *Assembler) {
		a.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New validates layout and returns an Assembler for it.
func New(layout domain.Layout, opts ...Option) (*Assembler, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	a := &Assembler{
		layout: layout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Layout returns the layout the assembler was built with.
func (a *Assembler) Layout() domain.Layout {
	return a.layout
}

// Split cuts ciphertext into one segment per block.
func (a *Assembler) Split(ciphertext []rune) ([][]rune, error) {
	need := a.layout.FixedLength()
	if len(ciphertext) < need {
		return nil, fmt.Errorf("%w: got %d symbols, need at least %d", domain.ErrShortInput, len(ciphertext), need)
	}

	segments := make([][]rune, 0, len(a.layout))
	pos := 0
	for _, b := range a.layout {
		end := pos + b.Length
		if b.IsRemainder() {
			end = len(ciphertext)
		}
		segments = append(segments, ciphertext[pos:end])
		pos = end
	}
	if pos != len(ciphertext) {
		return nil, fmt.Errorf("layout leaves %d trailing symbols unread", len(ciphertext)-pos)
	}
	return segments, nil
}

// Assemble reads out every block in order.
// The concatenation of the returned outputs is the intermediate ciphertext.
func (a *Assembler) Assemble(ctx context.Context, ciphertext string) ([]domain.BlockResult, error) {
	segments, err := a.Split([]rune(ciphertext))
	if err != nil {
		return nil, err
	}

	results := make([]domain.BlockResult, 0, len(segments))
	for i, b := range a.layout {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := a.now()
		a.logger.Debug("block_start", "block", b.Name, "mode", b.Mode, "length", len(segments[i]))
		if a.hooks.OnBlockStart != nil {
			a.hooks.OnBlockStart(ctx, &domain.BlockEvent{
				Timestamp: start,
				Type:      domain.EventBlockStart,
				Block:     b.Name,
				Mode:      b.Mode,
				Length:    len(segments[i]),
			})
		}

		res, err := ReadBlock(b, segments[i])
		if err != nil {
			a.logger.Error("block failed", "block", b.Name, "error", err)
			return nil, fmt.Errorf("block %s: %w", b.Name, err)
		}
		results = append(results, res)

		end := a.now()
		a.logger.Debug("block_done", "block", b.Name, "emitted", res.Emitted, "skipped", res.Skipped)
		if a.hooks.OnBlockDone != nil {
			a.hooks.OnBlockDone(ctx, &domain.BlockEvent{
				Timestamp: end,
				Type:      domain.EventBlockDone,
				Block:     b.Name,
				Mode:      b.Mode,
				Length:    len(segments[i]),
				Emitted:   res.Emitted,
				Skipped:   res.Skipped,
				Duration:  end.Sub(start),
			})
		}
	}
	return results, nil
}

// Join concatenates block outputs with no separator.
func Join(results []domain.BlockResult) string {
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Output)
	}
	return sb.String()
}

// ReadBlock reads out a single segment according to its spec.
func ReadBlock(b domain.BlockSpec, segment []rune) (domain.BlockResult, error) {
	res := domain.BlockResult{
		Name:  b.Name,
		Mode:  b.Mode,
		Input: string(segment),
	}

	if b.Mode == domain.ModeVerbatim {
		res.Output = string(segment)
		res.Emitted = len(segment)
		return res, nil
	}

	w, err := grid.FromSpec(b)
	if err != nil {
		return res, err
	}

	block := segment
	if b.Shift != nil {
		block, err = transform.Relocate(segment, *b.Shift)
		if err != nil {
			return res, err
		}
	}

	out, err := grid.ReadOut(block, w, b.Exclude)
	if err != nil {
		return res, err
	}
	res.Output = string(out.Symbols)
	res.Emitted = out.Emitted
	res.Skipped = out.Skipped
	return res, nil
}

// RestoreBlock undoes ReadBlock: it re-applies the transposition to a
// read-out and reverts the shift correction, yielding the original segment.
func RestoreBlock(b domain.BlockSpec, output []rune) ([]rune, error) {
	if b.Mode == domain.ModeVerbatim {
		return output, nil
	}

	w, err := grid.FromSpec(b)
	if err != nil {
		return nil, err
	}
	block, err := grid.Restore(output, w, b.Exclude)
	if err != nil {
		return nil, err
	}
	if b.Shift != nil {
		return transform.Relocate(block, b.Shift.Inverse())
	}
	return block, nil
}
