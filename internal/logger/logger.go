// Package logger configures log/slog for the demo.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

type Config struct {
	Level  string
	Format string // "console", "text", "json"
	Output io.Writer
}

// New builds a logger without touching the slog default.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	level := ParseLevel(cfg.Level)
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: level})
	default:
		handler = newConsoleHandler(cfg.Output, level, termenv.NewOutput(cfg.Output))
	}
	return slog.New(handler)
}

// Init installs a logger built from cfg as the slog default and returns it.
func Init(cfg Config, attrs ...any) *slog.Logger {
	lg := New(cfg)
	if len(attrs) > 0 {
		lg = lg.With(attrs...)
	}
	slog.SetDefault(lg)
	return lg
}

func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// consoleHandler writes one human-friendly line per record:
//
//	12:00:00 INFO  Scene loaded  triangles=4212 path=assets/scenes/world.obj
type consoleHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	out   *termenv.Output
	level slog.Level
	pre   string // attrs from WithAttrs, already formatted
	group string
}

func newConsoleHandler(w io.Writer, level slog.Level, out *termenv.Output) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, out: out, level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.TimeOnly))
	b.WriteByte(' ')
	b.WriteString(h.levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	b.WriteString(h.pre)
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(formatAttr(h.group, a))
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	for _, a := range attrs {
		next.pre += formatAttr(h.group, a)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	next := *h
	if h.group != "" {
		next.group = h.group + "." + name
	} else {
		next.group = name
	}
	return &next
}

func (h *consoleHandler) levelTag(level slog.Level) string {
	var tag, color string
	switch {
	case level >= slog.LevelError:
		tag, color = "ERROR", "1"
	case level >= slog.LevelWarn:
		tag, color = "WARN ", "3"
	case level >= slog.LevelInfo:
		tag, color = "INFO ", "2"
	default:
		tag, color = "DEBUG", "8"
	}
	return h.out.String(tag).Foreground(h.out.Color(color)).String()
}

func formatAttr(group string, a slog.Attr) string {
	if a.Equal(slog.Attr{}) {
		return ""
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		var s string
		for _, ga := range a.Value.Group() {
			s += formatAttr(key, ga)
		}
		return s
	}
	val := a.Value.Resolve().String()
	if strings.ContainsAny(val, " \t") {
		val = fmt.Sprintf("%q", val)
	}
	return " " + key + "=" + val
}
