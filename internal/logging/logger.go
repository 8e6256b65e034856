package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"scoreboardd/internal/config"
)

type Logger struct {
	l *slog.Logger
}

func level(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func New(cfg *config.Config) *Logger {
	// log file lives next to the logo DB (in the daemon's data dir)
	var out io.Writer = os.Stdout
	lvl := slog.LevelInfo
	if cfg != nil {
		lvl = level(cfg.LogLevel)
		if cfg.DBPath != "" {
			dir := filepath.Dir(cfg.DBPath)
			_ = os.MkdirAll(dir, 0o755)
			f, err := os.OpenFile(filepath.Join(dir, "scoreboardd.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				out = io.MultiWriter(os.Stdout, f)
			}
		}
	}
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})
	return &Logger{l: slog.New(handler)}
}

// Discard returns a logger that drops everything; used by tests and tools.
func Discard() *Logger {
	return &Logger{l: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func (lg *Logger) Info(msg string, args ...any)  { lg.l.Info(msg, args...) }
func (lg *Logger) Warn(msg string, args ...any)  { lg.l.Warn(msg, args...) }
func (lg *Logger) Error(msg string, args ...any) { lg.l.Error(msg, args...) }
func (lg *Logger) Debug(msg string, args ...any) { lg.l.Debug(msg, args...) }
