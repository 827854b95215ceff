package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/z340"
	"github.com/aretw0/z340/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// ReverseOptions configures the reverse command.
type ReverseOptions struct {
	Options
	InputPath string
	// Raw prints the intermediate text without normalization.
	Raw bool
}

// RunReverse reverses the ciphertext and prints it on a single line,
// or one line per block when splitting is enabled.
func RunReverse(ctx context.Context, opts ReverseOptions) error {
	cfg, err := opts.resolve()
	if err != nil {
		return err
	}
	stdin, stdout, stderr := opts.streams()
	logger := createLogger(cfg, stderr)

	normalizer, err := cfg.Normalizer()
	if err != nil {
		return err
	}

	reverserOpts := []z340.Option{
		z340.WithLogger(logger),
		z340.WithNormalizer(normalizer),
	}

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		collector, err := metrics.New(reg)
		if err != nil {
			return err
		}
		reverserOpts = append(reverserOpts, z340.WithLifecycleHooks(collector.Hooks()))
	}

	r, err := z340.New(reverserOpts...)
	if err != nil {
		return err
	}

	ciphertext, err := readCiphertext(opts.InputPath, stdin)
	if err != nil {
		return err
	}
	logger.Debug("ciphertext loaded", "symbols", len([]rune(ciphertext)), "source", sourceName(opts.InputPath))

	res, err := r.Reverse(ctx, ciphertext)
	if err != nil {
		return fmt.Errorf("failed to reverse transposition: %w", err)
	}

	if cfg.Split {
		for _, b := range res.Blocks {
			text := b.Output
			if !opts.Raw {
				text = normalizer.Normalize(text)
			}
			fmt.Fprintf(stdout, "%s\t%s\n", b.Name, text)
		}
	} else if opts.Raw {
		fmt.Fprintln(stdout, res.Raw)
	} else {
		fmt.Fprintln(stdout, res.Text)
	}

	if reg != nil {
		if err := metrics.WriteText(stderr, reg); err != nil {
			logger.Warn("failed to write metrics", "error", err)
		}
	}

	if shouldPause(cfg.Pause, stdin) {
		return Acknowledge(stdin, stderr)
	}
	return nil
}

func sourceName(path string) string {
	switch path {
	case "":
		return "builtin"
	case "-":
		return "stdin"
	}
	return path
}
