package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/isle-engine/omni/internal/kv"
)

func TestZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Zap(zap.New(core))

	l.Log(with(context.Background(), TRACE, "omni", "list"), "inserted",
		kv.String("list", "presenters"),
		kv.Int("count", 2),
		kv.Int64("big", 1<<40),
		kv.Bool("found", true),
		kv.Duration("latency", time.Second),
		kv.Strings("names", []string{"a", "b"}),
		kv.Any("any", 7),
		kv.Stringer("stringer", nil),
	)
	l.Log(with(context.Background(), FATAL), "fatal", kv.Error(errors.New("boom")))
	l.Log(with(context.Background(), QUIET), "quiet")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	require.Equal(t, "inserted", entries[0].Message)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "omni.list", entries[0].LoggerName)
	require.Equal(t, map[string]interface{}{
		"list":     "presenters",
		"count":    int64(2),
		"big":      int64(1 << 40),
		"found":    true,
		"latency":  time.Second,
		"names":    []interface{}{"a", "b"},
		"any":      int64(7),
		"stringer": "<nil>",
	}, entries[0].ContextMap())

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, "", entries[1].LoggerName)
	require.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestZapLevelFilter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := Zap(zap.New(core))
	l.Log(with(context.Background(), DEBUG, "omni"), "filtered")
	l.Log(with(context.Background(), INFO, "omni"), "kept")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "kept", logs.All()[0].Message)
}
