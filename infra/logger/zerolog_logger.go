package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger emits structured JSON lines, or colorized console lines when
// APP_ENV=dev. Every line carries the component field so the scheduled run
// and the one-off collect command stay distinguishable in shared output.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a logger for the given component.
func NewZerologLogger(component string) Logger {
	z := zerolog.New(output()).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func output() io.Writer {
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return os.Stdout
}

func (l *ZerologLogger) Debugf(format string, args ...any) { l.log.Debug().Msgf(format, args...) }
func (l *ZerologLogger) Infof(format string, args ...any)  { l.log.Info().Msgf(format, args...) }
func (l *ZerologLogger) Warnf(format string, args ...any)  { l.log.Warn().Msgf(format, args...) }
func (l *ZerologLogger) Errorf(format string, args ...any) { l.log.Error().Msgf(format, args...) }
