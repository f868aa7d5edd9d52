package binding

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/apstndb/flagbind/flagmeta"
)

type zapLogger struct {
	l *zap.Logger
}

// ZapLogger adapts a zap logger to Logger.
func ZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l: l.WithOptions(zap.AddCallerSkip(1))}
}

func (z *zapLogger) Debug(msg string, args ...any) { z.l.Debug(msg, zapFields(args)...) }

func (z *zapLogger) Info(msg string, args ...any) { z.l.Info(msg, zapFields(args)...) }

func (z *zapLogger) Warn(msg string, args ...any) { z.l.Warn(msg, zapFields(args)...) }

// zapFields converts alternating key/value pairs into zap fields.
// A trailing key without a value is logged under "!BADKEY".
func zapFields(args []any) []zap.Field {
	f := make([]zap.Field, 0, (len(args)+1)/2)

	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			f = append(f, zap.Any("!BADKEY", args[i]))
			break
		}

		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}

		switch v := args[i+1].(type) {
		case string:
			f = append(f, zap.String(key, v))
		case int:
			f = append(f, zap.Int(key, v))
		case int64:
			f = append(f, zap.Int64(key, v))
		case bool:
			f = append(f, zap.Bool(key, v))
		case time.Duration:
			f = append(f, zap.Duration(key, v))
		case error:
			f = append(f, zap.NamedError(key, v))
		case flagmeta.Value:
			f = append(f, zap.Stringer(key, v))
		default:
			f = append(f, zap.Any(key, v))
		}
	}

	return f
}
