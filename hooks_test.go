package eclair

import (
	"errors"
	"testing"

	"github.com/hyp3rd/ewrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRecordHook struct {
	kinds    []RecordKind
	onRecord func(record Record) error
	executed bool
}

func (m *mockRecordHook) OnRecord(record Record) error {
	m.executed = true
	if m.onRecord != nil {
		return m.onRecord(record)
	}

	return nil
}

func (m *mockRecordHook) Kinds() []RecordKind {
	return m.kinds
}

func TestHookRegistry(t *testing.T) {
	t.Parallel()

	t.Run("Add", func(t *testing.T) {
		t.Parallel()

		registry := NewHookRegistry()
		hook := &mockRecordHook{kinds: []RecordKind{KindIn}}

		require.NoError(t, registry.Add("test-hook", hook))

		err := registry.Add("test-hook", hook)
		require.ErrorContains(t, err, "hook already registered")

		err = registry.Add("", hook)
		require.ErrorContains(t, err, "hook name cannot be empty")

		err = registry.Add("nil-hook", nil)
		require.ErrorContains(t, err, "hook cannot be nil")
	})

	t.Run("Remove", func(t *testing.T) {
		t.Parallel()

		registry := NewHookRegistry()
		hook := &mockRecordHook{kinds: []RecordKind{KindIn}}

		require.NoError(t, registry.Add("test-hook", hook))
		assert.True(t, registry.Remove("test-hook"))
		assert.False(t, registry.Remove("test-hook"))
		assert.False(t, registry.Remove("non-existent"))
	})

	t.Run("Get", func(t *testing.T) {
		t.Parallel()

		registry := NewHookRegistry()
		hook := &mockRecordHook{kinds: []RecordKind{KindIn}}

		require.NoError(t, registry.Add("test-hook", hook))

		got, exists := registry.Get("test-hook")
		require.True(t, exists)
		assert.Same(t, hook, got)

		_, exists = registry.Get("non-existent")
		assert.False(t, exists)
	})

	t.Run("ForKind", func(t *testing.T) {
		t.Parallel()

		registry := NewHookRegistry()
		inHook := &mockRecordHook{kinds: []RecordKind{KindIn}}
		errorHook := &mockRecordHook{kinds: []RecordKind{KindError}}
		multiHook := &mockRecordHook{kinds: []RecordKind{KindIn, KindError}}

		require.NoError(t, registry.Add("in-hook", inHook))
		require.NoError(t, registry.Add("error-hook", errorHook))
		require.NoError(t, registry.Add("multi-hook", multiHook))

		assert.Len(t, registry.ForKind(KindIn), 2)
		assert.Len(t, registry.ForKind(KindError), 2)
		assert.Empty(t, registry.ForKind(KindManual))
	})

	t.Run("Fire", func(t *testing.T) {
		t.Parallel()

		registry := NewHookRegistry()

		successHook := &mockRecordHook{kinds: []RecordKind{KindError}}
		failHook := &mockRecordHook{
			kinds: []RecordKind{KindError},
			onRecord: func(Record) error {
				return ewrap.New("hook failed")
			},
		}

		require.NoError(t, registry.Add("success-hook", successHook))
		require.NoError(t, registry.Add("fail-hook", failHook))

		errs := registry.Fire(Record{Kind: KindError, Level: WarnLevel, Message: "! boom"})

		assert.Len(t, errs, 1)
		assert.True(t, successHook.executed)
		assert.True(t, failHook.executed)

		assert.Empty(t, registry.Fire(Record{Kind: KindManual}))
	})
}

func TestHookRegistryEmitHook(t *testing.T) {
	t.Parallel()

	registry := NewHookRegistry()

	var seen []Record

	require.NoError(t, registry.Add("capture", NewFilterHook(
		[]RecordKind{KindIn, KindOut},
		func(record Record) error {
			seen = append(seen, record)

			return nil
		},
	)))

	var reported []error

	registry.OnError(func(err error) {
		reported = append(reported, err)
	})

	require.NoError(t, registry.Add("broken", NewFilterHook(
		[]RecordKind{KindOut},
		func(Record) error {
			return ewrap.New("broken hook")
		},
	)))

	emit := registry.EmitHook()

	emit(Record{Kind: KindIn, Level: InfoLevel, Message: ">"})
	emit(Record{Kind: KindOut, Level: InfoLevel, Message: "<"})
	emit(Record{Kind: KindError, Level: WarnLevel, Message: "!"})

	require.Len(t, seen, 2)
	assert.Equal(t, KindIn, seen[0].Kind)
	assert.Equal(t, KindOut, seen[1].Kind)

	require.Len(t, reported, 1)
	assert.ErrorContains(t, reported[0], "broken hook")
}

func TestHookRegistryWiredIntoLogger(t *testing.T) {
	t.Parallel()

	registry := NewHookRegistry()

	failures := 0

	require.NoError(t, registry.Add("failure-counter", NewFilterHook(
		[]RecordKind{KindError},
		func(Record) error {
			failures++

			return nil
		},
	)))

	logger, err := New(NewConfigBuilder().
		WithFacades(NoopFacadeFactory{}).
		WithLevels(staticLevels(DebugLevel)).
		WithHook(registry.EmitHook()).
		Build())
	require.NoError(t, err)

	sentinel := errors.New("boom")
	pack, err := NewPackBuilder().
		WithIn(NewInLog(InfoLevel)).
		WithError(NewErrorLog(WarnLevel, MatchValue(sentinel))).
		Build()
	require.NoError(t, err)

	inv := Invocation{Target: "app.Jobs", Method: "Run"}

	_, err = logger.Invoke(inv, pack, func() (any, error) { return nil, sentinel })
	require.ErrorIs(t, err, sentinel)

	assert.Equal(t, 1, failures)
}

func TestFilterHook(t *testing.T) {
	t.Parallel()

	t.Run("handler invoked for matching kinds", func(t *testing.T) {
		t.Parallel()

		calls := 0
		hook := NewFilterHook([]RecordKind{KindManual}, func(Record) error {
			calls++

			return ewrap.New("handler error")
		})

		assert.Equal(t, []RecordKind{KindManual}, hook.Kinds())

		err := hook.OnRecord(Record{Kind: KindManual})
		require.ErrorContains(t, err, "handler error")
		assert.Equal(t, 1, calls)
	})

	t.Run("nil handler is a no-op", func(t *testing.T) {
		t.Parallel()

		hook := NewFilterHook([]RecordKind{KindManual}, nil)

		require.NoError(t, hook.OnRecord(Record{Kind: KindManual}))
	})
}
