package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/z340/internal/config"
	"github.com/aretw0/z340/internal/logging"
)

// Options carries the settings shared by every command.
// Pointer fields are only set when the matching flag was given, so that
// they take precedence over the config file.
type Options struct {
	ConfigPath     string
	ConfigRequired bool

	LogLevel  *string
	LogFormat *string
	Pause     *string
	Split     *bool
	Metrics   *bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) streams() (io.Reader, io.Writer, io.Writer) {
	in, out, errw := o.Stdin, o.Stdout, o.Stderr
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}
	return in, out, errw
}

// resolve loads the config file and applies flag overrides on top of it.
func (o *Options) resolve() (config.Config, error) {
	path := o.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, o.ConfigRequired)
	if err != nil {
		return cfg, err
	}

	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.LogFormat != nil {
		cfg.LogFormat = *o.LogFormat
	}
	if o.Pause != nil {
		cfg.Pause = config.PauseMode(*o.Pause)
	}
	if o.Split != nil {
		cfg.Split = *o.Split
	}
	if o.Metrics != nil {
		cfg.Metrics = *o.Metrics
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// createLogger configures the application logger on the error stream,
// keeping stdout for the result.
func createLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, _ := logging.ParseLevel(cfg.LogLevel)
	format, _ := logging.ParseFormat(cfg.LogFormat)
	return logging.NewWithWriter(w, level, format)
}
