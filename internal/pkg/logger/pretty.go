package logger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
)

var bufPool = buffer.NewPool()

// PrettyEncoder formats zap entries in consola style for terminal output:
// gray timestamp, level icon, message, then key=value fields.
type PrettyEncoder struct {
	*zapcore.MapObjectEncoder
	color bool
}

// NewPrettyEncoder creates a PrettyEncoder. Set color=true for ANSI output.
func NewPrettyEncoder(color bool) zapcore.Encoder {
	return &PrettyEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		color:            color,
	}
}

func (e *PrettyEncoder) Clone() zapcore.Encoder {
	clone := &PrettyEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		color:            e.color,
	}
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (e *PrettyEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	buf := bufPool.Get()

	collector := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		collector.Fields[k] = v
	}
	for _, f := range fields {
		f.AddTo(collector)
	}

	e.appendColored(buf, ansiGray, entry.Time.Format("2006-01-02 15:04:05"))
	buf.AppendByte(' ')

	icon, iconColor := levelIcon(entry.Level)
	e.appendColored(buf, iconColor, icon)
	buf.AppendByte(' ')

	if entry.LoggerName != "" {
		e.appendColored(buf, ansiYellow, "["+entry.LoggerName+"]")
		buf.AppendByte(' ')
	}

	buf.AppendString(entry.Message)

	keys := make([]string, 0, len(collector.Fields))
	for k := range collector.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.AppendByte(' ')
		buf.AppendString(k)
		buf.AppendByte('=')
		buf.AppendString(formatFieldValue(collector.Fields[k]))
	}

	buf.AppendByte('\n')
	return buf, nil
}

func (e *PrettyEncoder) appendColored(buf *buffer.Buffer, color, text string) {
	if e.color && color != "" {
		buf.AppendString(color)
		buf.AppendString(text)
		buf.AppendString(ansiReset)
		return
	}
	buf.AppendString(text)
}

func levelIcon(level zapcore.Level) (icon string, color string) {
	switch level {
	case zapcore.DebugLevel:
		return "⚙", ansiGray
	case zapcore.WarnLevel:
		return "⚠", ansiYellow
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return "✖", ansiRed
	default:
		return "ℹ", ansiCyan
	}
}

func formatFieldValue(v interface{}) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case time.Duration:
		s = val.String()
	case time.Time:
		s = val.Format(time.RFC3339)
	case error:
		s = val.Error()
	default:
		s = fmt.Sprint(val)
	}
	if s == "" || strings.ContainsAny(s, " \"=\n\r\t") {
		return strconv.Quote(s)
	}
	return s
}
