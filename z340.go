package z340

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/z340/internal/assembler"
	"github.com/aretw0/z340/pkg/corpus"
	"github.com/aretw0/z340/pkg/domain"
	"github.com/aretw0/z340/pkg/transform"
)

// Reverser is the high-level entry point for the library.
// It wraps the block assembler and the output normalizer.
type Reverser struct {
	assembler  *assembler.Assembler
	normalizer *transform.Normalizer
	layout     domain.Layout
	hooks      domain.Hooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Reverser.
type Option func(*Reverser)

// WithLayout replaces the built-in Z-340 layout.
func WithLayout(layout domain.Layout) Option {
	return func(r *Reverser) {
		r.layout = layout
	}
}

// WithNormalizer replaces the default ";"->"Ä", "|"->"Ö" normalizer.
func WithNormalizer(n *transform.Normalizer) Option {
	return func(r *Reverser) {
		r.normalizer = n
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.Hooks) Option {
	return func(r *Reverser) {
		r.hooks = r.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reverser) {
		r.logger = logger
	}
}

// Result holds the per-block read-outs and the assembled text.
type Result struct {
	Blocks []domain.BlockResult
	// Raw is the concatenation of the block outputs before normalization.
	Raw string
	// Text is Raw after normalization.
	Text string
}

// New initializes a Reverser. Without options it reverses the Z-340.
func New(opts ...Option) (*Reverser, error) {
	r := &Reverser{}
	for _, opt := range opts {
		opt(r)
	}

	if r.layout == nil {
		r.layout = corpus.Z340Layout()
	}
	if r.normalizer == nil {
		r.normalizer = transform.DefaultNormalizer()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	asm, err := assembler.New(r.layout,
		assembler.WithLogger(r.logger),
		assembler.WithLifecycleHooks(r.hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	r.assembler = asm
	return r, nil
}

// Reverse undoes the transposition of ciphertext and normalizes the result.
func (r *Reverser) Reverse(ctx context.Context, ciphertext string) (*Result, error) {
	blocks, err := r.assembler.Assemble(ctx, ciphertext)
	if err != nil {
		return nil, err
	}
	raw := assembler.Join(blocks)
	res := &Result{
		Blocks: blocks,
		Raw:    raw,
		Text:   r.normalizer.Normalize(raw),
	}
	r.logger.Info("ciphertext reversed", "blocks", len(blocks), "symbols", len([]rune(raw)))
	return res, nil
}

// Layout returns the layout in use.
func (r *Reverser) Layout() domain.Layout {
	return r.layout
}

// Normalizer returns the normalizer in use.
func (r *Reverser) Normalizer() *transform.Normalizer {
	return r.normalizer
}

// ReverseZ340 reverses the built-in Z-340 transcription with default settings.
func ReverseZ340(ctx context.Context) (string, error) {
	r, err := New()
	if err != nil {
		return "", err
	}
	res, err := r.Reverse(ctx, corpus.Z340)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}
