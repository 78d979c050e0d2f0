// Package eclair provides declarative entry/exit/error logging for
// intercepted calls.
//
// An interception layer (a gRPC interceptor, a hand-rolled wrapper, any
// middleware) describes each method once with an immutable LogPack: an
// optional entry directive, one optional directive per parameter, an
// optional exit directive, and a set of error directives matched against
// the failure a call returns. On every call the CallLogger engine decides
// whether entry, exit and error records are necessary, at which severity,
// with which arguments rendered verbosely versus omitted, and assembles the
// exact record text:
//
//	> firstName=James, lastName=Bond
//	< 007
//	! agent not found
//
// Key properties:
//   - Gate before render: when a directive's level is not enabled for the
//     resolved logger name, no argument is ever rendered.
//   - Per-argument control: each parameter can carry its own directive with
//     independent level, verbosity threshold and printer.
//   - Error matching: error directives are matched nearest-first against the
//     unwrap chain of the returned error.
//   - Manual records: code inside an intercepted method can emit ad-hoc
//     records gated the same way, with lazily evaluated arguments.
//
// The engine owns none of the plumbing around itself. Backends, level
// configuration and value formatting are consumed through the small
// interfaces below; ready-made implementations live under pkg/facade,
// pkg/levels and pkg/printer.
//
// Basic usage:
//
//	store := levels.NewStore(eclair.DebugLevel)
//	logger, err := eclair.New(eclair.Config{
//		Facades: facade.NewSlogFactory(nil),
//		Levels:  store,
//	})
//	if err != nil {
//		panic(err)
//	}
//
//	pack, err := eclair.NewPackBuilder().
//		WithIn(eclair.NewInLog(eclair.InfoLevel)).
//		WithArg("name", eclair.NewArgLog(eclair.InfoLevel)).
//		WithOut(eclair.NewOutLog(eclair.InfoLevel)).
//		Build()
//	if err != nil {
//		panic(err)
//	}
//
//	inv := eclair.Invocation{
//		Target:    "github.com/acme/app/greet.Service",
//		Method:    "Hello",
//		Args:      []any{"James"},
//		HasResult: true,
//	}
//	result, err := logger.Invoke(inv, pack, func() (any, error) {
//		return svc.Hello("James")
//	})
package eclair

// Facade is the handle this engine emits through, one per logger name.
// Implementations route to a concrete backend (slog, zap, a writer) and must
// not fail for well-formed input; a level of Off must be treated as a no-op.
type Facade interface {
	// Log writes a record at the given level.
	Log(level Level, msg string)
	// LogError writes a record at the given level with an attached cause,
	// so backends capable of stack capture can use it.
	LogError(level Level, msg string, cause error)
}

// FacadeFactory resolves the Facade for a logger name. Factories are
// consulted on every emission, so implementations should make resolution
// cheap (see pkg/facade for a caching decorator).
type FacadeFactory interface {
	GetFacade(name string) Facade
}

// LevelSource reports the effective threshold for a logger name, reflecting
// live configuration. Implementations must be safe for concurrent use.
type LevelSource interface {
	EffectiveLevel(name string) Level
}

// Printer renders a single argument, result or other value to text.
// Implementations may fail; the engine falls back to a default rendering and
// never lets a printer error or panic reach the intercepted call.
type Printer interface {
	Print(value any) (string, error)
}

// RecordKind identifies which assembler produced a record.
type RecordKind uint8

const (
	// KindIn marks a method-entry record.
	KindIn RecordKind = iota
	// KindOut marks a method-exit record.
	KindOut
	// KindError marks a failure record.
	KindError
	// KindManual marks a record emitted through the manual entry point.
	KindManual
)

// String returns the string representation of the record kind.
func (k RecordKind) String() string {
	switch k {
	case KindIn:
		return "in"
	case KindOut:
		return "out"
	case KindError:
		return "error"
	case KindManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Record describes one emitted log record. Records are handed to emit hooks
// after the backing facade has been invoked.
type Record struct {
	// LoggerName is the resolved logger identity the record was routed to.
	LoggerName string
	// Level is the severity the record was emitted at.
	Level Level
	// Kind identifies the producing assembler.
	Kind RecordKind
	// Message is the exact record text, prefix included.
	Message string
	// Cause is the attached error for failure records, nil otherwise.
	Cause error
}

// EmitHook observes emitted records. Hooks run synchronously on the calling
// goroutine after the facade write and must not block; they are meant for
// tests and lightweight taps such as metrics listeners.
type EmitHook func(record Record)
