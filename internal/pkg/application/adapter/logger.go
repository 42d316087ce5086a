package adapter

import (
	"context"
	"log/slog"

	"github.com/diwise/asset-adapter/pkg/oaio/manager"
)

// hostLogger forwards messages from managers and plugin systems to slog
type hostLogger struct {
	logger *slog.Logger
}

func newHostLogger(logger *slog.Logger) manager.LoggerInterface {
	return &hostLogger{logger: logger}
}

func (l *hostLogger) Log(ctx context.Context, severity manager.Severity, message string) {
	l.logger.Log(ctx, levelFor(severity), message)
}

func levelFor(severity manager.Severity) slog.Level {
	switch severity {
	case manager.SeverityDebugAPI, manager.SeverityDebug:
		return slog.LevelDebug
	case manager.SeverityInfo, manager.SeverityProgress:
		return slog.LevelInfo
	case manager.SeverityWarning:
		return slog.LevelWarn
	}
	return slog.LevelError
}
