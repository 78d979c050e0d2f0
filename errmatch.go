package eclair

import (
	"fmt"
	"reflect"
)

// maxUnwrapDepth bounds the breadth-first walk over an error's unwrap
// chain, guarding against cyclic Unwrap implementations.
const maxUnwrapDepth = 32

// ErrorMatcher decides whether a single error value belongs to an error
// directive. Matchers never unwrap: the engine walks the unwrap chain
// itself, level by level, so that a directive matching the error as thrown
// always beats one matching a wrapped cause.
type ErrorMatcher interface {
	// Matches reports whether err itself is accepted.
	Matches(err error) bool

	// String describes the matcher for diagnostics.
	String() string
}

// MatchValue matches a specific error value, in the manner of a single
// errors.Is step: by identity for comparable targets, then through the
// error's own Is method when it provides one.
func MatchValue(target error) ErrorMatcher {
	return &valueMatcher{
		target:     target,
		comparable: target != nil && reflect.TypeOf(target).Comparable(),
	}
}

type valueMatcher struct {
	target     error
	comparable bool
}

func (m *valueMatcher) Matches(err error) bool {
	if err == nil || m.target == nil {
		return false
	}

	if m.comparable && err == m.target {
		return true
	}

	if is, ok := err.(interface{ Is(error) bool }); ok {
		return is.Is(m.target)
	}

	return false
}

func (m *valueMatcher) String() string {
	return fmt.Sprintf("value(%v)", m.target)
}

// MatchType matches any error whose dynamic value is a T, in the manner of
// a single errors.As step: a plain type assertion against T. T may be a
// concrete error type, a pointer to one, or an error interface.
//
// Example: eclair.MatchType[*fs.PathError]().
func MatchType[T error]() ErrorMatcher {
	return typeMatcher[T]{}
}

type typeMatcher[T error] struct{}

func (typeMatcher[T]) Matches(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(T)

	return ok
}

func (typeMatcher[T]) String() string {
	return "type(" + reflect.TypeOf((*T)(nil)).Elem().String() + ")"
}

// MatchError selects the error directive nearest to err. Directives
// matching err itself win over directives matching an unwrapped cause,
// shallower causes win over deeper ones, and registration order breaks
// ties within one depth. A directive whose exclude matchers accept any
// error in the chain is skipped. Returns nil when no directive applies.
func (p *LogPack) MatchError(err error) *ErrorLog {
	if p == nil || err == nil {
		return nil
	}

	frontier := []error{err}

	for depth := 0; depth < maxUnwrapDepth && len(frontier) > 0; depth++ {
		for i := range p.errorLogs {
			candidate := &p.errorLogs[i]
			if !matchesAny(candidate.matchers, frontier) {
				continue
			}

			if candidate.excludedFor(err) {
				continue
			}

			return candidate
		}

		frontier = unwrapFrontier(frontier)
	}

	return nil
}

// excludedFor reports whether any exclude matcher accepts err or one of
// its unwrapped causes, at any depth.
func (l *ErrorLog) excludedFor(err error) bool {
	if len(l.excludes) == 0 {
		return false
	}

	frontier := []error{err}

	for depth := 0; depth < maxUnwrapDepth && len(frontier) > 0; depth++ {
		if matchesAny(l.excludes, frontier) {
			return true
		}

		frontier = unwrapFrontier(frontier)
	}

	return false
}

func matchesAny(matchers []ErrorMatcher, frontier []error) bool {
	for _, matcher := range matchers {
		for _, err := range frontier {
			if matcher.Matches(err) {
				return true
			}
		}
	}

	return false
}

// unwrapFrontier advances one level down the unwrap chain, expanding both
// single-cause and joined errors.
func unwrapFrontier(frontier []error) []error {
	var next []error

	for _, err := range frontier {
		switch wrapped := err.(type) {
		case interface{ Unwrap() error }:
			if cause := wrapped.Unwrap(); cause != nil {
				next = append(next, cause)
			}
		case interface{ Unwrap() []error }:
			for _, cause := range wrapped.Unwrap() {
				if cause != nil {
					next = append(next, cause)
				}
			}
		}
	}

	return next
}
