// Package logging builds the leveled logger. The terminal belongs to the UI,
// so records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

type Options struct {
	File       string
	Level      string
	Format     string
	Timestamps bool
	Prefix     string
}

// Logger wraps the charm logger together with the file it writes to.
type Logger struct {
	*log.Logger
	file *os.File
}

func New(opts Options) (*Logger, error) {
	level, err := log.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
	}
	formatter, err := parseFormatter(opts.Format)
	if err != nil {
		return nil, err
	}

	var w io.Writer = io.Discard
	var file *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err = os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = file
	}

	return &Logger{
		Logger: NewWithWriter(w, level, formatter, opts.Timestamps, opts.Prefix),
		file:   file,
	}, nil
}

func NewWithWriter(w io.Writer, level log.Level, formatter log.Formatter, timestamps bool, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: timestamps,
		ReportCaller:    false,
		Prefix:          prefix,
	})
}

func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

func parseFormatter(raw string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", raw)
	}
}
