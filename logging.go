package main

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// Writes one compact line per record: "time level message key=value...".
//
// Level filtering is delegated to a wrapped slog text handler.
type LogHandler struct {
	h   slog.Handler
	mu  *sync.Mutex
	out io.Writer
}

// Creates a handler writing to o, of opts only Level has an effect.
func NewLogHandler(o io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &LogHandler{
		out: o,
		h: slog.NewTextHandler(o, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: nil,
		}),
		mu: &sync.Mutex{},
	}
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{h: h.h.WithAttrs(attrs), out: h.out, mu: h.mu}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{h: h.h.WithGroup(name), out: h.out, mu: h.mu}
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {

	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	//add time and message to values
	strs := []string{formattedTime, r.Level.String(), r.Message}

	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			strs = append(strs, a.Key+"="+a.Value.String())
			return true
		})
	}

	result := strings.Join(strs, " ") + "\n"
	b := []byte(result)

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.out.Write(b)

	return err

}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Installs a LogHandler on stdout as the default logger.
func SetupLogging(level string) {
	handler := NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: ParseLogLevel(level)})
	slog.SetDefault(slog.New(handler))
}
