package facade

import (
	"context"
	"log/slog"

	"github.com/DonKeyHot1/eclair"
)

// slog has no TRACE or FATAL. Place TRACE below DEBUG and FATAL above
// ERROR with the same spacing slog uses between its own levels.
const (
	SlogTraceLevel = slog.LevelDebug - 4
	SlogFatalLevel = slog.LevelError + 4
)

func slogLevel(level eclair.Level) slog.Level {
	switch level {
	case eclair.TraceLevel:
		return SlogTraceLevel
	case eclair.DebugLevel:
		return slog.LevelDebug
	case eclair.InfoLevel:
		return slog.LevelInfo
	case eclair.WarnLevel:
		return slog.LevelWarn
	case eclair.ErrorLevel:
		return slog.LevelError
	case eclair.FatalLevel:
		return SlogFatalLevel
	default:
		return slog.LevelInfo
	}
}

// SlogFactory adapts log/slog handlers. Every facade carries its logger
// name as the "logger" attribute, so downstream processing can filter and
// group by origin.
type SlogFactory struct {
	handler slog.Handler
}

// Ensure SlogFactory implements eclair.FacadeFactory.
var _ eclair.FacadeFactory = (*SlogFactory)(nil)

// NewSlogFactory creates a factory on top of handler. A nil handler falls
// back to the process-default slog handler.
func NewSlogFactory(handler slog.Handler) *SlogFactory {
	if handler == nil {
		handler = slog.Default().Handler()
	}

	return &SlogFactory{handler: handler}
}

// GetFacade returns a facade labelled with name.
func (f *SlogFactory) GetFacade(name string) eclair.Facade {
	logger := slog.New(f.handler)
	if name != "" {
		logger = logger.With(slog.String("logger", name))
	}

	return &SlogFacade{logger: logger}
}

// SlogFacade forwards records to a slog.Logger.
type SlogFacade struct {
	logger *slog.Logger
}

// Ensure SlogFacade implements eclair.Facade.
var _ eclair.Facade = (*SlogFacade)(nil)

// Log forwards the record at the mapped slog level. Off records are
// dropped: no backend has a severity for them.
func (s *SlogFacade) Log(level eclair.Level, message string) {
	if level == eclair.OffLevel {
		return
	}

	s.logger.Log(context.Background(), slogLevel(level), message)
}

// LogError forwards the record with the cause as the "error" attribute.
func (s *SlogFacade) LogError(level eclair.Level, message string, cause error) {
	if level == eclair.OffLevel {
		return
	}

	s.logger.Log(context.Background(), slogLevel(level), message, slog.Any("error", cause))
}
