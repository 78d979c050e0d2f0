package eclair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazyDefersEvaluation(t *testing.T) {
	calls := 0

	lazy := Lazy(func() any {
		calls++

		return "expensive"
	})

	assert.Zero(t, calls, "wrapping must not evaluate the supplier")

	assert.Equal(t, "expensive", unwrapLazy(lazy))
	assert.Equal(t, 1, calls)
}

func TestLazyNilSupplier(t *testing.T) {
	assert.Nil(t, unwrapLazy(Lazy(nil)))
	assert.Nil(t, unwrapLazy(LazyValue{}))
}

func TestUnwrapLazyPassesValuesThrough(t *testing.T) {
	assert.Equal(t, 42, unwrapLazy(42))
	assert.Nil(t, unwrapLazy(nil))
}

func TestUnwrapLazyArgs(t *testing.T) {
	args := []any{1, Lazy(func() any { return 2 }), 3}

	resolved := unwrapLazyArgs(args)

	assert.Equal(t, []any{1, 2, 3}, resolved)

	// The input slice keeps its unresolved supplier.
	_, stillLazy := args[1].(LazyValue)
	assert.True(t, stillLazy)
}

func TestUnwrapLazyArgsWithoutSuppliers(t *testing.T) {
	args := []any{1, "two", 3.0}

	resolved := unwrapLazyArgs(args)

	assert.Equal(t, args, resolved)
	assert.Same(t, &args[0], &resolved[0], "no supplier means no copy")
}
