package cli

import (
	"fmt"

	"github.com/aretw0/z340/internal/assembler"
	"github.com/aretw0/z340/internal/presentation/gridview"
	"github.com/aretw0/z340/pkg/corpus"
	"github.com/aretw0/z340/pkg/domain"
	"github.com/muesli/termenv"
)

// GridOptions configures the grid command.
type GridOptions struct {
	Options
	Block    string // empty for every diagonal block
	Symbols  bool   // show symbols instead of walk steps
	Markdown bool
	Style    string // glamour style, empty for auto
	NoColor  bool
}

// RunGrid prints the walk order of the diagonal blocks of the Z-340 layout.
func RunGrid(opts GridOptions) error {
	cfg, err := opts.resolve()
	if err != nil {
		return err
	}
	_, stdout, stderr := opts.streams()
	logger := createLogger(cfg, stderr)

	asm, err := assembler.New(corpus.Z340Layout(), assembler.WithLogger(logger))
	if err != nil {
		return err
	}
	segments, err := asm.Split([]rune(corpus.Z340))
	if err != nil {
		return err
	}

	var render func(string) (string, error)
	if opts.Markdown {
		render, err = gridview.NewRenderer(opts.Style)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
	}

	profile := termenv.ColorProfile()
	if opts.NoColor {
		profile = termenv.Ascii
	}

	found := false
	for i, spec := range asm.Layout() {
		if opts.Block != "" && spec.Name != opts.Block {
			continue
		}
		found = true
		if spec.Mode != domain.ModeDiagonal {
			logger.Info("block has no grid", "block", spec.Name, "mode", spec.Mode)
			continue
		}

		var segment []rune
		if opts.Symbols {
			segment = segments[i]
		}
		table, err := gridview.Build(spec, segment)
		if err != nil {
			return fmt.Errorf("block %s: %w", spec.Name, err)
		}

		if render != nil {
			out, err := render(gridview.RenderMarkdown(table, opts.Symbols))
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			fmt.Fprint(stdout, out)
			continue
		}
		fmt.Fprintln(stdout, gridview.RenderText(table, profile, opts.Symbols))
	}

	if !found {
		return fmt.Errorf("unknown block %q", opts.Block)
	}
	return nil
}
