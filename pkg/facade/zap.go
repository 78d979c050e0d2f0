package facade

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DonKeyHot1/eclair"
)

// zapLevel maps engine levels onto zap. TRACE folds into DEBUG, which is
// zap's floor. FATAL maps to ERROR on purpose: zap terminates the process
// on fatal writes, a side effect a logging facade must never trigger.
func zapLevel(level eclair.Level) zapcore.Level {
	switch level {
	case eclair.TraceLevel, eclair.DebugLevel:
		return zapcore.DebugLevel
	case eclair.InfoLevel:
		return zapcore.InfoLevel
	case eclair.WarnLevel:
		return zapcore.WarnLevel
	case eclair.ErrorLevel, eclair.FatalLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ZapFactory adapts a zap logger. Logger names become zap names, so they
// appear in the "logger" field of encoded output and participate in zap's
// name-based filtering.
type ZapFactory struct {
	base *zap.Logger
}

// Ensure ZapFactory implements eclair.FacadeFactory.
var _ eclair.FacadeFactory = (*ZapFactory)(nil)

// NewZapFactory creates a factory on top of base. A nil base is replaced
// with a no-op logger.
func NewZapFactory(base *zap.Logger) *ZapFactory {
	if base == nil {
		base = zap.NewNop()
	}

	return &ZapFactory{base: base}
}

// GetFacade returns a facade named name.
func (f *ZapFactory) GetFacade(name string) eclair.Facade {
	return &ZapFacade{logger: f.base.Named(name)}
}

// ZapFacade forwards records to a zap.Logger.
type ZapFacade struct {
	logger *zap.Logger
}

// Ensure ZapFacade implements eclair.Facade.
var _ eclair.Facade = (*ZapFacade)(nil)

// Log forwards the record at the mapped zap level. Off records are
// dropped: no backend has a severity for them.
func (z *ZapFacade) Log(level eclair.Level, message string) {
	if level == eclair.OffLevel {
		return
	}

	if entry := z.logger.Check(zapLevel(level), message); entry != nil {
		entry.Write()
	}
}

// LogError forwards the record with the cause as the "error" field.
func (z *ZapFacade) LogError(level eclair.Level, message string, cause error) {
	if level == eclair.OffLevel {
		return
	}

	if entry := z.logger.Check(zapLevel(level), message); entry != nil {
		entry.Write(zap.Error(cause))
	}
}
