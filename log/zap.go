package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/isle-engine/omni/internal/kv"
)

var _ Logger = (*zapLogger)(nil)

// Zap adapts z to Logger. Namespaces from context become zap logger names.
// FATAL records are written at error level so that logging never stops the process.
func Zap(z *zap.Logger) *zapLogger {
	return &zapLogger{z: z}
}

type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl, ok := zapLevel(LevelFromContext(ctx))
	if !ok {
		return
	}
	ce := l.z.Named(strings.Join(NamesFromContext(ctx), ".")).Check(lvl, msg)
	if ce == nil {
		return
	}
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zf = append(zf, zapField(f))
	}
	ce.Write(zf...)
}

func zapLevel(lvl Level) (zapcore.Level, bool) {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel, true
	case INFO:
		return zapcore.InfoLevel, true
	case WARN:
		return zapcore.WarnLevel, true
	case ERROR, FATAL:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

func zapField(f Field) zap.Field {
	switch f.Type() {
	case kv.IntType:
		return zap.Int(f.Key(), f.IntValue())
	case kv.Int64Type:
		return zap.Int64(f.Key(), f.Int64Value())
	case kv.StringType:
		return zap.String(f.Key(), f.StringValue())
	case kv.BoolType:
		return zap.Bool(f.Key(), f.BoolValue())
	case kv.DurationType:
		return zap.Duration(f.Key(), f.DurationValue())
	case kv.StringsType:
		return zap.Strings(f.Key(), f.StringsValue())
	case kv.ErrorType:
		return zap.NamedError(f.Key(), f.ErrorValue())
	case kv.AnyType:
		return zap.Any(f.Key(), f.AnyValue())
	default:
		return zap.String(f.Key(), f.String())
	}
}
