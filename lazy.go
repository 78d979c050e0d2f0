package eclair

// LazyValue defers the computation of a logged value until the engine has
// decided the containing message will actually be emitted. Wrap expensive
// arguments with Lazy; when the gate is closed the supplier is never
// invoked.
//
// Example:
//
//	logger.Debug("report ready: %s", eclair.Lazy(func() any {
//		return buildExpensiveReport()
//	}))
type LazyValue struct {
	supply func() any
}

// Lazy wraps a supplier for deferred evaluation.
func Lazy(supply func() any) LazyValue {
	return LazyValue{supply: supply}
}

func (v LazyValue) value() any {
	if v.supply == nil {
		return nil
	}

	return v.supply()
}

// unwrapLazy resolves a value at the point of inclusion in a message.
func unwrapLazy(value any) any {
	if lazy, ok := value.(LazyValue); ok {
		return lazy.value()
	}

	return value
}

// unwrapLazyArgs resolves suppliers in a manual-log argument list. The
// input slice is never mutated; when no supplier is present it is returned
// as is.
func unwrapLazyArgs(args []any) []any {
	deferred := false

	for _, arg := range args {
		if _, ok := arg.(LazyValue); ok {
			deferred = true

			break
		}
	}

	if !deferred {
		return args
	}

	resolved := make([]any, len(args))
	for i, arg := range args {
		resolved[i] = unwrapLazy(arg)
	}

	return resolved
}
