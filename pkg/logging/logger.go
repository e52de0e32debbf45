// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for the parking service.
//
// The package wraps the standard library slog with a layered setup:
//
//   - Default: stderr output, text format, for local runs and the CLI.
//   - Optional: JSON file logging with automatic directory creation,
//     one file per service per day.
//   - Extensible: a LogExporter interface for shipping entries to an
//     external sink.
//
// # Basic Usage
//
//	logger := logging.Default()
//	logger.Info("request created", "request_id", reqID)
//
// # File Logging
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelInfo,
//	    LogDir:  "~/.aleutianpark/logs",
//	    Service: "parking",
//	})
//	defer logger.Close()
//
// # Thread Safety
//
// Logger is safe for concurrent use.
//
// This package does NOT redact sensitive data; callers must keep plates,
// tokens, and personal data out of log fields.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// Exporter
// =============================================================================

// LogEntry is the exporter-facing form of one log record.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Service   string         `json:"service"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LogExporter ships log entries to an external sink. Implementations
// should buffer internally; Export is called on the logging hot path.
type LogExporter interface {
	Export(ctx context.Context, entry LogEntry) error
	Flush(ctx context.Context) error
	Close() error
}

// =============================================================================
// Config
// =============================================================================

// Config controls logger construction.
type Config struct {
	// Level is the minimum severity emitted.
	Level Level

	// LogDir enables file logging when non-empty. Supports ~ expansion.
	// Files are named {service}_{date}.log, JSON-formatted.
	LogDir string

	// Service tags every entry and names the log file.
	Service string

	// JSON switches the stderr handler from text to JSON.
	JSON bool

	// Exporter, when set, receives every entry after local handlers.
	Exporter LogExporter

	// Output overrides stderr, for tests.
	Output io.Writer
}

// =============================================================================
// Logger
// =============================================================================

// Logger is a leveled structured logger with optional file output and
// export.
type Logger struct {
	mu       sync.Mutex
	slogger  *slog.Logger
	level    Level
	service  string
	file     *os.File
	exporter LogExporter
}

// New builds a logger from config. File-open failures degrade to
// stderr-only with a warning rather than failing construction.
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}
	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	l := &Logger{
		level:    config.Level,
		service:  config.Service,
		exporter: config.Exporter,
	}

	if config.LogDir != "" {
		dir := expandPath(config.LogDir)
		if err := os.MkdirAll(dir, 0o755); err == nil {
			name := fmt.Sprintf("%s_%s.log", config.Service, time.Now().Format("2006-01-02"))
			if f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				l.file = f
				fileHandler := slog.NewJSONHandler(f, opts)
				handler = &multiHandler{handlers: []slog.Handler{handler, fileHandler}}
			} else {
				fmt.Fprintf(os.Stderr, "logging: cannot open log file: %v\n", err)
			}
		} else {
			fmt.Fprintf(os.Stderr, "logging: cannot create log dir %s: %v\n", dir, err)
		}
	}

	l.slogger = slog.New(handler)
	if config.Service != "" {
		l.slogger = l.slogger.With("service", config.Service)
	}
	return l
}

// Default returns a stderr text logger at Info level.
func Default() *Logger {
	return New(Config{Level: LevelInfo})
}

// Debug logs at debug level with alternating key/value args.
func (l *Logger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { l.log(LevelInfo, msg, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) { l.log(LevelWarn, msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.log(LevelError, msg, args...) }

// With returns a logger that adds args to every entry. The child shares
// the parent's file handle and exporter.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slogger:  l.slogger.With(args...),
		level:    l.level,
		service:  l.service,
		file:     l.file,
		exporter: l.exporter,
	}
}

// Slog exposes the underlying slog.Logger for libraries that take one.
func (l *Logger) Slog() *slog.Logger {
	return l.slogger
}

// Close flushes the exporter and closes the log file, if any. Safe to
// call on loggers without either.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	if l.exporter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.exporter.Flush(ctx); err != nil {
			firstErr = err
		}
		if err := l.exporter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if l.file != nil {
		if err := l.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		l.file = nil
	}
	return firstErr
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.level {
		return
	}
	switch level {
	case LevelDebug:
		l.slogger.Debug(msg, args...)
	case LevelInfo:
		l.slogger.Info(msg, args...)
	case LevelWarn:
		l.slogger.Warn(msg, args...)
	case LevelError:
		l.slogger.Error(msg, args...)
	}

	if l.exporter != nil {
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level.String(),
			Message:   msg,
			Service:   l.service,
			Fields:    argsToMap(args),
		}
		// Export errors are swallowed; logging must not fail the caller.
		_ = l.exporter.Export(context.Background(), entry)
	}
}

// =============================================================================
// Multi Handler
// =============================================================================

// multiHandler fans one record out to several slog handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: next}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: next}
}

// =============================================================================
// Helpers
// =============================================================================

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func argsToMap(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	out := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}
		out[key] = args[i+1]
	}
	return out
}

// =============================================================================
// Test Exporters
// =============================================================================

// NopExporter discards everything. Useful as a placeholder.
type NopExporter struct{}

func (e *NopExporter) Export(ctx context.Context, entry LogEntry) error { return nil }
func (e *NopExporter) Flush(ctx context.Context) error                  { return nil }
func (e *NopExporter) Close() error                                     { return nil }

// BufferedExporter collects entries in memory, for tests.
type BufferedExporter struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewBufferedExporter returns an empty buffered exporter.
func NewBufferedExporter() *BufferedExporter {
	return &BufferedExporter{}
}

func (e *BufferedExporter) Export(ctx context.Context, entry LogEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = append(e.entries, entry)
	return nil
}

func (e *BufferedExporter) Flush(ctx context.Context) error { return nil }

func (e *BufferedExporter) Close() error { return nil }

// Entries returns a copy of everything exported so far.
func (e *BufferedExporter) Entries() []LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]LogEntry, len(e.entries))
	copy(out, e.entries)
	return out
}
