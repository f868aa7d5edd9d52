package binding

// Logger receives engine diagnostics as a message with key/value pairs.
// *slog.Logger satisfies it; use ZapLogger to adapt a *zap.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}
