package main

import (
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/apstndb/flagbind/binding"
	"github.com/apstndb/flagbind/enums"
)

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// newLogger builds the logger shared by the engine and the transports.
// The returned function flushes buffered output.
func newLogger(w io.Writer, format enums.LogFormat, level slog.Level) (binding.Logger, func()) {
	switch format {
	case enums.LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), func() {}
	case enums.LogFormatZap:
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), zapLevel(level))
		zapLogger := zap.New(core)
		return binding.ZapLogger(zapLogger), func() { _ = zapLogger.Sync() }
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), func() {}
	}
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
