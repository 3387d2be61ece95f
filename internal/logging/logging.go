// Package logging builds the zerolog loggers used across gridview and carries
// them through context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the logger's level, encoding and destination.
type Config struct {
	Level  string `koanf:"level"  yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
	File   string `koanf:"file"   yaml:"file"`
}

// DefaultConfig logs warnings and above to stderr.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: FormatConsole}
}

// Result is a configured logger plus the file it writes to, if any.
type Result struct {
	Logger   zerolog.Logger
	FilePath string
	file     *os.File
}

// Close releases the log file handle.
func (r *Result) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. Console output is colored only when stderr
// is a terminal. An unparsable level falls back to info.
func New(cfg Config, stderr io.Writer) (*Result, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := stderr
	result := &Result{}
	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, fmt.Errorf("opening log file: %w", openErr)
		}
		out = f
		result.file = f
		result.FilePath = cfg.File
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    result.file != nil || !isTerminal(stderr),
		}
	}

	result.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return result, nil
}

// ComponentLogger tags every event with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
