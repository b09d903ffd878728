// Package logging builds the zap loggers shared by the server and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string    // debug, info, warn or error; default info
	Format string    // auto, console or json; default auto
	Writer io.Writer // default os.Stderr
}

// New constructs a logger. With Format "auto" the console encoder is used
// when Writer is a terminal and JSON otherwise.
func New(opts Options) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(defaultString(opts.Level, "info"))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	format := strings.ToLower(strings.TrimSpace(defaultString(opts.Format, "auto")))
	if format == "auto" {
		format = "json"
		if isTerminal(w) {
			format = "console"
		}
	}

	var enc zapcore.Encoder
	switch format {
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	case "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		enc = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
