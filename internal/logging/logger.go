// Package logging is the small logger surface used by the demo binary.
// Library packages never log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrBadConfig indicates an unknown level or format name.
var ErrBadConfig = errors.New("logging: bad config")

// Logger takes a message plus alternating key/value pairs.
type Logger interface {
	Info(msg string, keyValues ...any)
	Error(msg string, keyValues ...any)
	Debug(msg string, keyValues ...any)
	Warn(msg string, keyValues ...any)
}

// Adapter implements Logger on top of *slog.Logger.
type Adapter struct {
	logger *slog.Logger
}

var _ Logger = (*Adapter)(nil)

// New wraps logger.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// Info logs msg at INFO level.
func (a *Adapter) Info(msg string, keyValues ...any) {
	a.logger.Info(msg, keyValues...)
}

// Error logs msg at ERROR level.
func (a *Adapter) Error(msg string, keyValues ...any) {
	a.logger.Error(msg, keyValues...)
}

// Debug logs msg at DEBUG level.
func (a *Adapter) Debug(msg string, keyValues ...any) {
	a.logger.Debug(msg, keyValues...)
}

// Warn logs msg at WARN level.
func (a *Adapter) Warn(msg string, keyValues ...any) {
	a.logger.Warn(msg, keyValues...)
}

// Config selects the slog handler.
type Config struct {
	Level  string // debug | info | warn | error
	Format string // text | json
}

// NewWriter builds an Adapter writing to w according to cfg.
// Names are case-insensitive; empty values mean info/text.
func NewWriter(w io.Writer, cfg Config) (*Adapter, error) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("level %q: %w", cfg.Level, ErrBadConfig)
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("format %q: %w", cfg.Format, ErrBadConfig)
	}

	return New(slog.New(h)), nil
}
