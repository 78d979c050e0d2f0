package eclair

import "github.com/hyp3rd/ewrap"

// ErrNoErrorMatchers is returned by PackBuilder.Build when an error
// directive carries no accept matchers.
var ErrNoErrorMatchers = ewrap.New("error directive requires at least one matcher")

// LogPack is the immutable directive bundle for one method: at most one
// entry and one exit directive, one optional directive per parameter, and
// any number of error directives. Build packs with NewPackBuilder; a built
// pack never changes and is safe for concurrent use across calls.
type LogPack struct {
	in         *InLog
	out        *OutLog
	args       []*ArgLog
	paramNames []string
	errorLogs  []ErrorLog
}

// In returns the entry directive, or nil when the pack has none.
func (p *LogPack) In() *InLog {
	if p == nil {
		return nil
	}

	return p.in
}

// Out returns the exit directive, or nil when the pack has none.
func (p *LogPack) Out() *OutLog {
	if p == nil {
		return nil
	}

	return p.out
}

// ParamCount reports how many parameters the pack declares.
func (p *LogPack) ParamCount() int {
	if p == nil {
		return 0
	}

	return len(p.args)
}

// ParamName returns the declared name of parameter i, or "" when the name
// is unknown or i is out of range.
func (p *LogPack) ParamName(i int) string {
	if p == nil || i < 0 || i >= len(p.paramNames) {
		return ""
	}

	return p.paramNames[i]
}

// Arg returns the directive attached to parameter i, or nil when the
// parameter has none or i is out of range.
func (p *LogPack) Arg(i int) *ArgLog {
	if p == nil || i < 0 || i >= len(p.args) {
		return nil
	}

	return p.args[i]
}

// ErrorLogs returns a copy of the error directives in registration order.
func (p *LogPack) ErrorLogs() []ErrorLog {
	if p == nil {
		return nil
	}

	return append([]ErrorLog(nil), p.errorLogs...)
}

// Empty reports whether the pack declares nothing to log. The engine
// treats empty and nil packs alike: every path becomes a no-op.
func (p *LogPack) Empty() bool {
	if p == nil {
		return true
	}

	if p.in != nil || p.out != nil || len(p.errorLogs) > 0 {
		return false
	}

	for _, arg := range p.args {
		if arg != nil {
			return false
		}
	}

	return true
}

// PackBuilder assembles a LogPack. Parameters are declared in positional
// order with WithParam or WithArg; error directives keep their
// registration order, which breaks ties when several match at the same
// unwrap depth.
//
// Example:
//
//	pack, err := eclair.NewPackBuilder().
//		WithIn(eclair.NewInLog(eclair.InfoLevel)).
//		WithArg("userID", eclair.NewArgLog(eclair.DebugLevel)).
//		WithParam("password").
//		WithOut(eclair.NewOutLog(eclair.InfoLevel)).
//		WithError(eclair.NewErrorLog(eclair.WarnLevel, eclair.MatchValue(ErrQuotaExceeded))).
//		Build()
type PackBuilder struct {
	in             *InLog
	out            *OutLog
	args           []*ArgLog
	paramNames     []string
	errorLogs      []ErrorLog
	defaultPrinter Printer
}

// NewPackBuilder creates an empty pack builder.
func NewPackBuilder() *PackBuilder {
	return &PackBuilder{}
}

// WithIn sets the entry directive.
func (b *PackBuilder) WithIn(log InLog) *PackBuilder {
	b.in = &log

	return b
}

// WithOut sets the exit directive.
func (b *PackBuilder) WithOut(log OutLog) *PackBuilder {
	b.out = &log

	return b
}

// WithParam declares the next parameter without a directive of its own.
// Use "" when the parameter name is unknown; unnamed arguments are then
// rendered without a name label.
func (b *PackBuilder) WithParam(name string) *PackBuilder {
	b.args = append(b.args, nil)
	b.paramNames = append(b.paramNames, name)

	return b
}

// WithArg declares the next parameter together with its directive.
func (b *PackBuilder) WithArg(name string, log ArgLog) *PackBuilder {
	b.args = append(b.args, &log)
	b.paramNames = append(b.paramNames, name)

	return b
}

// WithError appends an error directive. Order matters: earlier directives
// win ties at equal unwrap depth.
func (b *PackBuilder) WithError(log ErrorLog) *PackBuilder {
	b.errorLogs = append(b.errorLogs, log)

	return b
}

// WithDefaultPrinter sets the printer applied at build time to every
// directive that has none of its own. Directives keep their explicit
// printers.
func (b *PackBuilder) WithDefaultPrinter(printer Printer) *PackBuilder {
	b.defaultPrinter = printer

	return b
}

// Build validates the accumulated directives and returns the immutable
// pack. The builder can be reused afterwards; the pack shares no state
// with it.
func (b *PackBuilder) Build() (*LogPack, error) {
	if b.in != nil {
		if err := b.in.validate(); err != nil {
			return nil, ewrap.Wrap(err, "invalid entry directive")
		}
	}

	if b.out != nil {
		if err := b.out.validate(); err != nil {
			return nil, ewrap.Wrap(err, "invalid exit directive")
		}
	}

	for i, arg := range b.args {
		if arg == nil {
			continue
		}

		if err := arg.validate(); err != nil {
			return nil, ewrap.Wrapf(err, "invalid directive for parameter %q", b.paramNames[i])
		}
	}

	for i := range b.errorLogs {
		if err := b.errorLogs[i].validate(); err != nil {
			return nil, ewrap.Wrapf(err, "invalid error directive %d", i)
		}
	}

	pack := &LogPack{
		paramNames: append([]string(nil), b.paramNames...),
		errorLogs:  append([]ErrorLog(nil), b.errorLogs...),
		args:       make([]*ArgLog, len(b.args)),
	}

	if b.in != nil {
		in := *b.in
		if in.printer == nil {
			in.printer = b.defaultPrinter
		}

		pack.in = &in
	}

	if b.out != nil {
		out := *b.out
		if out.printer == nil {
			out.printer = b.defaultPrinter
		}

		pack.out = &out
	}

	for i, arg := range b.args {
		if arg == nil {
			continue
		}

		copied := *arg
		if copied.printer == nil {
			copied.printer = b.defaultPrinter
		}

		pack.args[i] = &copied
	}

	return pack, nil
}
