package eclair

// Invocation describes one intercepted call. Interception layers build one
// per call and pass it, together with the method's LogPack, to the engine.
// The engine never mutates an Invocation.
type Invocation struct {
	// Target is the declaring identity of the callee, typically a
	// package-qualified type such as "github.com/acme/billing.Calculator".
	// It becomes the logger name for every record of this call; an empty
	// Target resolves to the root logger.
	Target string
	// Method is the invoked method name. It is carried for interception
	// layers and hooks; the logger identity is Target alone.
	Method string
	// Args holds the call arguments in declaration order. Entries are
	// index-aligned with the LogPack's argument directives and parameter
	// names.
	Args []any
	// HasResult reports whether the method declares a result value. When
	// false the call is treated as void: a nil result produces no result
	// clause in the exit record.
	HasResult bool
}
