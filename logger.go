package eclair

import (
	"fmt"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/DonKeyHot1/eclair/internal/names"
)

// Message prefixes of the logging protocol. Entry, exit and failure
// records open with a direction marker; manual records with a dash.
const (
	inPrefix     = ">"
	outPrefix    = "<"
	errorPrefix  = "!"
	manualPrefix = "-"
)

// CallLogger turns method invocations and their directive packs into log
// records. It is stateless apart from counters: one instance serves any
// number of goroutines and packs.
type CallLogger struct {
	facades FacadeFactory
	levels  LevelSource
	printer Printer
	hooks   []EmitHook
	names   *names.Builder
	metrics Metrics
}

// New creates a CallLogger from config.
func New(config Config) (*CallLogger, error) {
	if err := validateConfig(&config); err != nil {
		return nil, ewrap.Wrap(err, "invalid call logger config")
	}

	printer := config.DefaultPrinter
	if printer == nil {
		printer = DefaultPrinter()
	}

	return &CallLogger{
		facades: config.Facades,
		levels:  config.Levels,
		printer: printer,
		hooks:   append([]EmitHook(nil), config.Hooks...),
		names:   names.NewBuilder(config.CallerSkip),
	}, nil
}

// Metrics returns a snapshot of the engine counters.
func (l *CallLogger) Metrics() MetricsSnapshot {
	return l.metrics.Snapshot()
}

// levelGate answers enabled-checks against one logger's effective level,
// querying the level source at most once. A gate lives for a single call;
// caching across calls would hide live level changes.
type levelGate struct {
	source  LevelSource
	name    string
	level   Level
	queried bool
}

func newLevelGate(source LevelSource, name string) levelGate {
	return levelGate{source: source, name: name}
}

func (g *levelGate) enabled(requested Level) bool {
	if !g.queried {
		g.level = g.source.EffectiveLevel(g.name)
		g.queried = true
	}

	return requested.Enabled(g.level)
}

// loggerName resolves the logger identity of an intercepted invocation:
// the declaring target, with "" addressing the root logger.
func (l *CallLogger) loggerName(inv Invocation) string {
	return inv.Target
}

func (l *CallLogger) printerFor(printer Printer) Printer {
	if printer != nil {
		return printer
	}

	return l.printer
}

// LogIn records a method entry. Without an entry directive the arguments
// alone can force a record: any argument directive passing its gate makes
// one, emitted at the highest level among the included arguments.
func (l *CallLogger) LogIn(inv Invocation, pack *LogPack) {
	if pack.Empty() {
		return
	}

	name := l.loggerName(inv)
	gate := newLevelGate(l.levels, name)

	in := pack.In()
	level := TraceLevel
	verboseEnabled := false

	if in != nil {
		if !gate.enabled(in.requiredLevel()) {
			l.metrics.recordSuppressed()

			return
		}

		level = in.level
		verboseEnabled = gate.enabled(in.verbose)
	}

	var detail strings.Builder

	clauseFound := false
	sawArgDirective := false

	for i, arg := range inv.Args {
		argLog := pack.Arg(i)
		if argLog != nil {
			sawArgDirective = true
		}

		switch {
		case in == nil:
			if argLog == nil || !gate.enabled(argLog.requiredLevel()) {
				continue
			}

			if argLog.level > level {
				level = argLog.level
			}
		case argLog == nil:
			if !verboseEnabled {
				continue
			}
		default:
			if !gate.enabled(argLog.requiredLevel()) {
				continue
			}
		}

		if clauseFound {
			detail.WriteString(", ")
		} else {
			detail.WriteString(" ")

			clauseFound = true
		}

		if argLog == nil || gate.enabled(argLog.verbose) {
			if paramName := pack.ParamName(i); paramName != "" {
				detail.WriteString(paramName)
				detail.WriteByte('=')
			}
		}

		value := unwrapLazy(arg)

		switch {
		case isNilValue(value):
			detail.WriteString(nullToken)
		case argLog != nil:
			detail.WriteString(l.render(l.printerFor(argLog.printer), value))
		default:
			detail.WriteString(l.render(l.printerFor(in.printer), value))
		}
	}

	if in == nil && !clauseFound {
		if sawArgDirective {
			l.metrics.recordSuppressed()
		}

		return
	}

	l.emit(name, level, KindIn, inPrefix+detail.String(), nil)
}

// LogOut records a successful return.
func (l *CallLogger) LogOut(inv Invocation, pack *LogPack, result any) {
	out := pack.Out()
	if out == nil {
		return
	}

	name := l.loggerName(inv)
	gate := newLevelGate(l.levels, name)

	if !gate.enabled(out.requiredLevel()) {
		l.metrics.recordSuppressed()

		return
	}

	l.emit(name, out.level, KindOut, outPrefix+l.resultClause(&gate, inv, out, result), nil)
}

// resultClause renders the returned value when the exit directive's
// verbose gate is open. A nil result reads "null" unless the method has no
// result at all, which leaves the bare exit marker.
func (l *CallLogger) resultClause(gate *levelGate, inv Invocation, out *OutLog, result any) string {
	if !gate.enabled(out.verbose) {
		return ""
	}

	value := unwrapLazy(result)
	if !isNilValue(value) {
		return " " + l.render(l.printerFor(out.printer), value)
	}

	if inv.HasResult {
		return " " + nullToken
	}

	return ""
}

// LogError records a failing return. The error directive nearest to err in
// its unwrap chain wins. With no match, an exit directive still marks the
// failure with the bare marker, without the cause.
func (l *CallLogger) LogError(inv Invocation, pack *LogPack, err error) {
	if err == nil {
		return
	}

	if errorLog := pack.MatchError(err); errorLog != nil {
		name := l.loggerName(inv)
		gate := newLevelGate(l.levels, name)

		if !gate.enabled(errorLog.requiredLevel()) {
			l.metrics.recordSuppressed()

			return
		}

		message := errorPrefix
		if gate.enabled(errorLog.verbose) {
			message += " " + err.Error()
		}

		l.emit(name, errorLog.level, KindError, message, err)

		return
	}

	out := pack.Out()
	if out == nil {
		return
	}

	name := l.loggerName(inv)
	gate := newLevelGate(l.levels, name)

	if !gate.enabled(out.requiredLevel()) {
		l.metrics.recordSuppressed()

		return
	}

	l.emit(name, out.level, KindError, errorPrefix, nil)
}

// Invoke runs call between entry and outcome records: entry before, exit
// after a successful return, failure after an error. Panics are logged as
// failures and re-raised.
func (l *CallLogger) Invoke(inv Invocation, pack *LogPack, call func() (any, error)) (result any, err error) {
	l.LogIn(inv, pack)

	defer func() {
		if r := recover(); r != nil {
			l.LogError(inv, pack, panicError(r))
			panic(r)
		}
	}()

	result, err = call()
	if err != nil {
		l.LogError(inv, pack, err)

		return result, err
	}

	l.LogOut(inv, pack, result)

	return result, err
}

// InvokeTyped adapts Invoke to a call returning a value. The invocation is
// marked as having a result, so a nil return reads "null" in the exit
// record.
func InvokeTyped[T any](l *CallLogger, inv Invocation, pack *LogPack, call func() (T, error)) (T, error) {
	inv.HasResult = true

	result, err := l.Invoke(inv, pack, func() (any, error) {
		return call()
	})
	if result == nil {
		var zero T

		return zero, err
	}

	return result.(T), err
}

// InvokeVoid adapts Invoke to a call without a result, so a successful
// exit record stays a bare marker.
func InvokeVoid(l *CallLogger, inv Invocation, pack *LogPack, call func() error) error {
	inv.HasResult = false

	_, err := l.Invoke(inv, pack, func() (any, error) {
		return nil, call()
	})

	return err
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return ewrap.Wrap(err, "panic")
	}

	return ewrap.New(fmt.Sprintf("panic: %v", r))
}

// IsLevelEnabled reports whether a manual record from the calling package
// would be emitted at the given level. The logger identity is resolved
// from the call stack, exactly as Log resolves it.
func (l *CallLogger) IsLevelEnabled(level Level) bool {
	name := l.names.BuildByInvoker()

	return level.Enabled(l.levels.EffectiveLevel(name))
}

// Log emits a manual record at level, gated on that same level. The
// format string follows fmt rules; arguments wrapped with Lazy are
// resolved only when the gate is open.
func (l *CallLogger) Log(level Level, format string, args ...any) {
	l.manual(level, level, format, args)
}

// LogIf emits a manual record at level while gating on ifEnabled. This
// allows a record to surface at INFO only when the logger is opened up to
// DEBUG, keeping the INFO stream quiet in normal operation.
func (l *CallLogger) LogIf(level, ifEnabled Level, format string, args ...any) {
	l.manual(level, ifEnabled, format, args)
}

// Trace emits a manual record at TraceLevel.
func (l *CallLogger) Trace(format string, args ...any) {
	l.manual(TraceLevel, TraceLevel, format, args)
}

// Debug emits a manual record at DebugLevel.
func (l *CallLogger) Debug(format string, args ...any) {
	l.manual(DebugLevel, DebugLevel, format, args)
}

// Info emits a manual record at InfoLevel.
func (l *CallLogger) Info(format string, args ...any) {
	l.manual(InfoLevel, InfoLevel, format, args)
}

// Warn emits a manual record at WarnLevel.
func (l *CallLogger) Warn(format string, args ...any) {
	l.manual(WarnLevel, WarnLevel, format, args)
}

// Error emits a manual record at ErrorLevel.
func (l *CallLogger) Error(format string, args ...any) {
	l.manual(ErrorLevel, ErrorLevel, format, args)
}

func (l *CallLogger) manual(level, ifEnabled Level, format string, args []any) {
	name := l.names.BuildByInvoker()
	gate := newLevelGate(l.levels, name)

	if !gate.enabled(ifEnabled) {
		l.metrics.recordSuppressed()

		return
	}

	resolved := unwrapLazyArgs(args)
	message := manualPrefix + " " + fmt.Sprintf(format, resolved...)

	l.emit(name, level, KindManual, message, nil)
}

func (l *CallLogger) emit(name string, level Level, kind RecordKind, message string, cause error) {
	facade := l.facades.GetFacade(name)
	if cause != nil {
		facade.LogError(level, message, cause)
	} else {
		facade.Log(level, message)
	}

	l.metrics.recordEmit(kind)

	if len(l.hooks) == 0 {
		return
	}

	record := Record{LoggerName: name, Level: level, Kind: kind, Message: message, Cause: cause}
	for _, hook := range l.hooks {
		hook(record)
	}
}
