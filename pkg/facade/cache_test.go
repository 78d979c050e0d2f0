package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonKeyHot1/eclair"
)

type countingFactory struct {
	calls map[string]int
}

func (f *countingFactory) GetFacade(name string) eclair.Facade {
	f.calls[name]++

	return eclair.NoopFacade{}
}

func TestCachedFactory_Memoizes(t *testing.T) {
	delegate := &countingFactory{calls: map[string]int{}}

	cached, err := NewCachedFactory(delegate, 4)
	require.NoError(t, err)

	cached.GetFacade("app")
	cached.GetFacade("app")
	cached.GetFacade("app.users")

	assert.Equal(t, 1, delegate.calls["app"])
	assert.Equal(t, 1, delegate.calls["app.users"])
}

func TestCachedFactory_EvictsBeyondCapacity(t *testing.T) {
	delegate := &countingFactory{calls: map[string]int{}}

	cached, err := NewCachedFactory(delegate, 1)
	require.NoError(t, err)

	cached.GetFacade("a")
	cached.GetFacade("b")
	cached.GetFacade("a")

	assert.Equal(t, 2, delegate.calls["a"])
}

func TestCachedFactory_NilDelegate(t *testing.T) {
	_, err := NewCachedFactory(nil, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delegate factory cannot be nil")
}
