// Package names resolves logger identities from the call stack.
//
// A manual log call carries no declared target, so the logger it addresses
// is derived from the code that made the call: the nearest stack frame that
// does not belong to this library. Plain functions map to their package
// path, methods to the package path plus the receiver type, mirroring how
// intercepted invocations use the declaring target as the logger name.
package names

import (
	"runtime"
	"strings"
)

// modulePath mirrors the module declaration in go.mod. Frames under these
// prefixes belong to the library itself and never name a logger.
const (
	modulePath = "github.com/DonKeyHot1/eclair"

	rootPrefix     = modulePath + "."
	internalPrefix = modulePath + "/internal/"
	pkgPrefix      = modulePath + "/pkg/"

	maxStackDepth = 64
)

// Builder resolves invoker identities from the call stack.
type Builder struct {
	extraSkip int
	skip      func(function string) bool
}

// NewBuilder creates a Builder. extraSkip skips additional non-library
// frames, for host applications that hide the manual API behind their own
// helpers.
func NewBuilder(extraSkip int) *Builder {
	return &Builder{extraSkip: extraSkip, skip: libraryFrame}
}

// BuildByInvoker walks the stack to the nearest frame outside the library
// and derives a logger name from it. Returns the root logger name "" when
// no such frame exists.
func (b *Builder) BuildByInvoker() string {
	pcs := make([]uintptr, maxStackDepth)

	// Skip runtime.Callers and BuildByInvoker itself.
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return ""
	}

	skip := b.skip
	if skip == nil {
		skip = libraryFrame
	}

	frames := runtime.CallersFrames(pcs[:n])
	remaining := b.extraSkip

	for {
		frame, more := frames.Next()

		if frame.Function != "" && !skip(frame.Function) {
			if remaining == 0 {
				return identityFromFunction(frame.Function)
			}

			remaining--
		}

		if !more {
			return ""
		}
	}
}

func libraryFrame(function string) bool {
	return strings.HasPrefix(function, rootPrefix) ||
		strings.HasPrefix(function, internalPrefix) ||
		strings.HasPrefix(function, pkgPrefix)
}

// identityFromFunction turns a runtime function symbol into a logger name:
//
//	pkg/path.Func                -> pkg/path
//	pkg/path.Func.func1          -> pkg/path
//	pkg/path.Type.Method         -> pkg/path.Type
//	pkg/path.(*Type).Method      -> pkg/path.Type
//	pkg/path.(*Type[...]).Method -> pkg/path.Type
func identityFromFunction(function string) string {
	dir := ""
	base := stripTypeParams(function)

	if i := strings.LastIndex(base, "/"); i >= 0 {
		dir = base[:i+1]
		base = base[i+1:]
	}

	segments := strings.Split(base, ".")

	for len(segments) > 2 && closureSegment(segments[len(segments)-1]) {
		segments = segments[:len(segments)-1]
	}

	switch {
	case len(segments) < 2:
		return dir + base
	case len(segments) == 2:
		// Plain function: the package alone is the identity.
		return dir + segments[0]
	default:
		receiver := strings.TrimSuffix(strings.TrimPrefix(segments[1], "(*"), ")")

		return dir + segments[0] + "." + receiver
	}
}

// stripTypeParams drops generic instantiations, whose bracketed shape
// descriptions may themselves contain dots and slashes.
func stripTypeParams(s string) string {
	if !strings.ContainsRune(s, '[') {
		return s
	}

	var b strings.Builder

	depth := 0

	for _, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// closureSegment recognises the suffixes the runtime appends for function
// literals: "func1", "func2", or bare indexes in nested literals.
func closureSegment(s string) bool {
	return isDigits(strings.TrimPrefix(s, "func"))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
