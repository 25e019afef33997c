package common

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/zeromicro/go-zero/core/logx"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures the process logger.
// Format: text|json; Level: debug|info|warn|error.
// A non-empty File writes to a rotating file instead of stderr.
type LogOptions struct {
	Level      string
	Format     string
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// SetupLoggerWithFile configures std log and the slog default logger and returns
// the writer they share so other loggers can be pointed at it.
func SetupLoggerWithFile(o LogOptions) io.Writer {
	var w io.Writer = os.Stderr
	if strings.TrimSpace(o.File) != "" {
		w = &lumberjack.Logger{Filename: o.File, MaxSize: o.MaxSize, MaxBackups: o.MaxBackups, MaxAge: o.MaxAge, Compress: o.Compress}
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(o.Level)}
	var h slog.Handler
	if strings.EqualFold(o.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
		log.SetFlags(0)
	} else {
		h = slog.NewTextHandler(w, opts)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
	slog.SetDefault(slog.New(&countHandler{next: h}))
	log.SetOutput(w)
	return w
}

// BridgeLogx sets logx up once from c and sends its output to w.
// Later logx.SetUp calls (rest.MustNewServer makes one) are no-ops.
func BridgeLogx(c logx.LogConf, w io.Writer) {
	logx.MustSetup(c)
	if w != nil {
		logx.SetWriter(logx.NewWriter(w))
	}
}

// ParseLevel maps a level name to slog; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// LogxLevel maps a level name to the closest go-zero logx level.
func LogxLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return "debug"
	case "warn", "warning", "error":
		return "error"
	case "severe":
		return "severe"
	default:
		return "info"
	}
}

// --------- counters for log levels ----------

var cntDebug, cntInfo, cntWarn, cntError atomic.Int64

type countHandler struct{ next slog.Handler }

func (c *countHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return c.next.Enabled(ctx, lvl)
}

func (c *countHandler) Handle(ctx context.Context, rec slog.Record) error {
	switch {
	case rec.Level >= slog.LevelError:
		cntError.Add(1)
	case rec.Level >= slog.LevelWarn:
		cntWarn.Add(1)
	case rec.Level >= slog.LevelInfo:
		cntInfo.Add(1)
	default:
		cntDebug.Add(1)
	}
	return c.next.Handle(ctx, rec)
}

func (c *countHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &countHandler{next: c.next.WithAttrs(attrs)}
}
func (c *countHandler) WithGroup(name string) slog.Handler { return &countHandler{next: c.next.WithGroup(name)} }

// GetLogCounters returns current log counters by level.
func GetLogCounters() map[string]int64 {
	d, i, w, e := cntDebug.Load(), cntInfo.Load(), cntWarn.Load(), cntError.Load()
	return map[string]int64{"debug": d, "info": i, "warn": w, "error": e, "total": d + i + w + e}
}
