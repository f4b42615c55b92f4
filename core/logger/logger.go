package logger

// Logger is the minimal logging interface used across the pipeline.
// Implementations live in infra/logger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
