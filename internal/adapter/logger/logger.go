package logger

import (
	"go.uber.org/zap"
)

// LoggerAdapter implements ports.LoggerPort on top of zap. Production gets
// JSON output, everything else the development console encoder.
type LoggerAdapter struct {
	log *zap.Logger
}

func NewLoggerAdapter(env string) *LoggerAdapter {
	var log *zap.Logger
	var err error
	if env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		log = zap.NewNop()
	}
	return &LoggerAdapter{log: log}
}

func toFields(fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}

func (l *LoggerAdapter) Info(message string, fields map[string]interface{}) {
	l.log.Info(message, toFields(fields)...)
}

func (l *LoggerAdapter) Warn(message string, fields map[string]interface{}) {
	l.log.Warn(message, toFields(fields)...)
}

func (l *LoggerAdapter) Error(message string, fields map[string]interface{}) {
	l.log.Error(message, toFields(fields)...)
}

// Sync flushes buffered log entries on shutdown.
func (l *LoggerAdapter) Sync() error {
	return l.log.Sync()
}
