package logger

// Logger exposes logging methods for common severity levels. Core planning
// packages stay log-free; the interface lives here so adapters and the app
// layer share one contract without importing infra code.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
