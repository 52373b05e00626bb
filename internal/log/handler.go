package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/prymitive/denom/internal/output"
)

var levelColors = map[slog.Level]output.Color{
	slog.LevelDebug: output.Magenta,
	slog.LevelInfo:  output.White,
	slog.LevelWarn:  output.Yellow,
	slog.LevelError: output.Red,
}

// handler writes each record as a single key=val line. Keys are dimmed,
// values colored by what they hold, errors always in red. Groups and
// logger-level attributes are not supported.
type handler struct {
	dst     io.Writer
	escaper *strings.Replacer
	level   slog.Level
	mtx     sync.Mutex
	noColor bool
}

func newHandler(dst io.Writer, level slog.Level, noColor bool) *handler {
	return &handler{
		dst:     dst,
		escaper: strings.NewReplacer(`"`, `\"`),
		level:   level,
		noColor: noColor,
	}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *handler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *handler) Handle(_ context.Context, record slog.Record) error {
	buf := bytes.NewBuffer(make([]byte, 0, 128))

	h.writePair(buf, "level", record.Level.String(), levelColors[record.Level])
	_, _ = buf.WriteRune(' ')
	h.writePair(buf, "msg", record.Message, output.White)
	record.Attrs(func(attr slog.Attr) bool {
		_, _ = buf.WriteRune(' ')
		val, color := h.renderValue(attr.Value.Resolve())
		h.writePair(buf, attr.Key, val, color)
		return true
	})
	_, _ = buf.WriteRune('\n')

	h.mtx.Lock()
	defer h.mtx.Unlock()

	if _, err := buf.WriteTo(h.dst); err != nil {
		return fmt.Errorf("failed to write buffer: %w", err)
	}
	return nil
}

func (h *handler) writePair(buf *bytes.Buffer, key, val string, color output.Color) {
	_, _ = buf.WriteString(output.MaybeColor(output.Dim, h.noColor, key+"="))
	_, _ = buf.WriteString(output.MaybeColor(color, h.noColor, h.quote(val)))
}

// quote wraps values containing spaces in escaped double quotes. JSON lists
// and objects are left alone, they read better without quoting.
func (h *handler) quote(s string) string {
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		return s
	}
	if !strings.Contains(s, " ") {
		return s
	}
	return `"` + h.escaper.Replace(s) + `"`
}

func (h *handler) renderValue(val slog.Value) (string, output.Color) {
	switch val.Kind() {
	case slog.KindString:
		return flatten(val.String()), output.Cyan
	case slog.KindAny:
		if _, ok := val.Any().(error); ok {
			return flatten(val.String()), output.Red
		}
		return renderAny(val), output.Cyan
	default:
		return renderAny(val), output.Blue
	}
}

// renderAny marshals structured values to JSON so lists and objects come out
// on a single line. Values JSON cannot handle fall back to their Go form.
func renderAny(val slog.Value) string {
	data, err := json.Marshal(val.Any())
	if err != nil {
		return val.String()
	}
	return string(data)
}

func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}
