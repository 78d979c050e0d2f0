package eclair

import "github.com/hyp3rd/ewrap"

// directive holds the level triple shared by every logging directive.
//
// requiredLevel folds level and ifEnabled into the single threshold the
// engine gates on. Taking the more verbose of the two means ifEnabled can
// only relax the gate, never tighten it: a directive that emits at INFO but
// carries ifEnabled=DEBUG already fires when the logger sits at DEBUG.
type directive struct {
	level     Level
	ifEnabled Level
	verbose   Level
}

func (d directive) requiredLevel() Level {
	return d.level.min(d.ifEnabled)
}

// Level reports the severity the directive emits at.
func (d directive) Level() Level { return d.level }

// IfEnabledLevel reports the optional activation threshold. OffLevel means
// unset, leaving the emit level as the gate.
func (d directive) IfEnabledLevel() Level { return d.ifEnabled }

// VerboseLevel reports the threshold above which the directive includes
// detail clauses (argument values, return values, error causes).
func (d directive) VerboseLevel() Level { return d.verbose }

func (d directive) validate() error {
	if !d.level.IsValid() {
		return ewrap.New("invalid directive level").WithMetadata("level", uint8(d.level))
	}

	if !d.ifEnabled.IsValid() {
		return ewrap.New("invalid directive if-enabled level").WithMetadata("level", uint8(d.ifEnabled))
	}

	if !d.verbose.IsValid() {
		return ewrap.New("invalid directive verbose level").WithMetadata("level", uint8(d.verbose))
	}

	return nil
}

// InLog is the entry directive. It controls whether a method invocation is
// recorded before the body runs and how much argument detail the entry
// message carries.
//
// Example: eclair.NewInLog(eclair.InfoLevel).WithVerbose(eclair.TraceLevel).
type InLog struct {
	directive

	printer Printer
}

// NewInLog creates an entry directive emitting at the given level. The
// if-enabled level defaults to OffLevel (unset) and the verbose level
// defaults to DebugLevel.
func NewInLog(level Level) InLog {
	return InLog{directive: directive{level: level, ifEnabled: OffLevel, verbose: DebugLevel}}
}

// WithIfEnabled sets an activation threshold that relaxes the gate without
// changing the emit level.
func (l InLog) WithIfEnabled(level Level) InLog {
	l.ifEnabled = level

	return l
}

// WithVerbose sets the verbosity threshold controlling argument detail.
func (l InLog) WithVerbose(level Level) InLog {
	l.verbose = level

	return l
}

// WithPrinter sets the printer used to render argument values that have no
// per-argument printer of their own. When nil, the pack default applies.
func (l InLog) WithPrinter(printer Printer) InLog {
	l.printer = printer

	return l
}

// Printer returns the directive's printer, or nil when unset.
func (l InLog) Printer() Printer { return l.printer }

// ArgLog is the per-argument directive. Attached to a single parameter, it
// can force that argument into the entry message (or keep it out) on its
// own gate, independent of the entry directive.
type ArgLog struct {
	directive

	printer Printer
}

// NewArgLog creates a per-argument directive with the given level. The
// if-enabled level defaults to OffLevel (unset) and the verbose level
// defaults to DebugLevel.
func NewArgLog(level Level) ArgLog {
	return ArgLog{directive: directive{level: level, ifEnabled: OffLevel, verbose: DebugLevel}}
}

// WithIfEnabled sets an activation threshold that relaxes the gate without
// changing the emit level.
func (l ArgLog) WithIfEnabled(level Level) ArgLog {
	l.ifEnabled = level

	return l
}

// WithVerbose sets the verbosity threshold controlling whether the argument
// is labelled with its parameter name.
func (l ArgLog) WithVerbose(level Level) ArgLog {
	l.verbose = level

	return l
}

// WithPrinter sets the printer used to render this argument's value.
func (l ArgLog) WithPrinter(printer Printer) ArgLog {
	l.printer = printer

	return l
}

// Printer returns the directive's printer, or nil when unset.
func (l ArgLog) Printer() Printer { return l.printer }

// OutLog is the exit directive. It controls whether a successful return is
// recorded and whether the return value is rendered into the exit message.
type OutLog struct {
	directive

	printer Printer
}

// NewOutLog creates an exit directive emitting at the given level. The
// if-enabled level defaults to OffLevel (unset) and the verbose level
// defaults to DebugLevel.
func NewOutLog(level Level) OutLog {
	return OutLog{directive: directive{level: level, ifEnabled: OffLevel, verbose: DebugLevel}}
}

// WithIfEnabled sets an activation threshold that relaxes the gate without
// changing the emit level.
func (l OutLog) WithIfEnabled(level Level) OutLog {
	l.ifEnabled = level

	return l
}

// WithVerbose sets the verbosity threshold controlling whether the return
// value is rendered.
func (l OutLog) WithVerbose(level Level) OutLog {
	l.verbose = level

	return l
}

// WithPrinter sets the printer used to render the return value.
func (l OutLog) WithPrinter(printer Printer) OutLog {
	l.printer = printer

	return l
}

// Printer returns the directive's printer, or nil when unset.
func (l OutLog) Printer() Printer { return l.printer }

// ErrorLog maps a set of error matchers to an emit level. A pack may carry
// several; when a method fails, the engine picks the one whose matcher sits
// closest to the thrown error in its unwrap chain.
type ErrorLog struct {
	directive

	matchers []ErrorMatcher
	excludes []ErrorMatcher
}

// NewErrorLog creates an error directive emitting at the given level for
// errors accepted by any of the matchers. The if-enabled level defaults to
// OffLevel (unset) and the verbose level defaults to ErrorLevel.
func NewErrorLog(level Level, matchers ...ErrorMatcher) ErrorLog {
	return ErrorLog{
		directive: directive{level: level, ifEnabled: OffLevel, verbose: ErrorLevel},
		matchers:  append([]ErrorMatcher(nil), matchers...),
	}
}

// WithIfEnabled sets an activation threshold that relaxes the gate without
// changing the emit level.
func (l ErrorLog) WithIfEnabled(level Level) ErrorLog {
	l.ifEnabled = level

	return l
}

// WithVerbose sets the verbosity threshold controlling whether the error
// text is appended to the failure message.
func (l ErrorLog) WithVerbose(level Level) ErrorLog {
	l.verbose = level

	return l
}

// WithExcludes adds matchers that veto this directive: an error accepted by
// an exclude matcher anywhere in its unwrap chain never selects it, even
// when a regular matcher accepts it.
func (l ErrorLog) WithExcludes(matchers ...ErrorMatcher) ErrorLog {
	l.excludes = append(append([]ErrorMatcher(nil), l.excludes...), matchers...)

	return l
}

// Matchers returns a copy of the accept matchers.
func (l ErrorLog) Matchers() []ErrorMatcher {
	return append([]ErrorMatcher(nil), l.matchers...)
}

// Excludes returns a copy of the exclude matchers.
func (l ErrorLog) Excludes() []ErrorMatcher {
	return append([]ErrorMatcher(nil), l.excludes...)
}

func (l ErrorLog) validate() error {
	if err := l.directive.validate(); err != nil {
		return err
	}

	if len(l.matchers) == 0 {
		return ErrNoErrorMatchers
	}

	for i, matcher := range l.matchers {
		if matcher == nil {
			return ewrap.New("nil error matcher").WithMetadata("index", i)
		}
	}

	for i, matcher := range l.excludes {
		if matcher == nil {
			return ewrap.New("nil error exclude matcher").WithMetadata("index", i)
		}
	}

	return nil
}
