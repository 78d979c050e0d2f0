package facade

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonKeyHot1/eclair"
)

type recordingFacade struct {
	logs   atomic.Uint64
	errors atomic.Uint64
}

func (f *recordingFacade) Log(_ eclair.Level, _ string) { f.logs.Add(1) }

func (f *recordingFacade) LogError(_ eclair.Level, _ string, _ error) { f.errors.Add(1) }

type recordingFactory struct {
	facade *recordingFacade
}

func (f *recordingFactory) GetFacade(_ string) eclair.Facade { return f.facade }

func newSamplingFixture(t *testing.T, cfg SamplingConfig) (*SamplingFactory, *recordingFacade) {
	t.Helper()

	sink := &recordingFacade{}

	sampling, err := NewSamplingFactory(&recordingFactory{facade: sink}, cfg)
	require.NoError(t, err)

	return sampling, sink
}

func TestSamplingFactory_InitialBurstThenCadence(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{Initial: 2, Thereafter: 3})

	facade := sampling.GetFacade("app")

	want := []bool{true, true, false, false, true, false, false, true}
	for i, pass := range want {
		before := sink.logs.Load()
		facade.Log(eclair.InfoLevel, "tick")

		assert.Equalf(t, pass, sink.logs.Load() > before, "record %d", i+1)
	}
}

func TestSamplingFactory_WarnAndAboveBypass(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{Initial: 1, Thereafter: 100})

	facade := sampling.GetFacade("app")

	facade.Log(eclair.InfoLevel, "first")
	facade.Log(eclair.InfoLevel, "sampled out")
	require.Equal(t, uint64(1), sink.logs.Load())

	for range 5 {
		facade.Log(eclair.WarnLevel, "always")
		facade.Log(eclair.ErrorLevel, "always")
	}

	assert.Equal(t, uint64(11), sink.logs.Load())
}

func TestSamplingFactory_CausesAlwaysForwarded(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{Initial: 1, Thereafter: 100})

	facade := sampling.GetFacade("app")

	facade.Log(eclair.DebugLevel, "first")
	facade.Log(eclair.DebugLevel, "sampled out")
	require.Equal(t, uint64(1), sink.logs.Load())

	cause := errors.New("boom")
	facade.LogError(eclair.DebugLevel, "! boom", cause)
	facade.LogError(eclair.DebugLevel, "! boom", cause)

	assert.Equal(t, uint64(2), sink.errors.Load())
}

func TestSamplingFactory_CountsPerName(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{Initial: 1, Thereafter: 100})

	app := sampling.GetFacade("app")
	jobs := sampling.GetFacade("jobs")

	app.Log(eclair.InfoLevel, "first")
	app.Log(eclair.InfoLevel, "sampled out")
	jobs.Log(eclair.InfoLevel, "fresh counter")

	assert.Equal(t, uint64(2), sink.logs.Load())
}

func TestSamplingFactory_CountsPerLevel(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{Initial: 1, Thereafter: 100})

	facade := sampling.GetFacade("app")

	facade.Log(eclair.TraceLevel, "first")
	facade.Log(eclair.TraceLevel, "sampled out")
	facade.Log(eclair.DebugLevel, "fresh counter")

	assert.Equal(t, uint64(2), sink.logs.Load())
}

func TestSamplingFactory_CountsSurviveReResolution(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{Initial: 1, Thereafter: 100})

	sampling.GetFacade("app").Log(eclair.InfoLevel, "first")
	sampling.GetFacade("app").Log(eclair.InfoLevel, "sampled out")

	assert.Equal(t, uint64(1), sink.logs.Load())
}

func TestSamplingFactory_ThereafterOneKeepsEverything(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{Initial: 1, Thereafter: 1})

	facade := sampling.GetFacade("app")
	for range 10 {
		facade.Log(eclair.InfoLevel, "tick")
	}

	assert.Equal(t, uint64(10), sink.logs.Load())
}

func TestSamplingFactory_ZeroConfigUsesDefaults(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{})

	facade := sampling.GetFacade("app")
	for range DefaultSamplingInitial + 1 {
		facade.Log(eclair.InfoLevel, "tick")
	}

	assert.Equal(t, uint64(DefaultSamplingInitial), sink.logs.Load())
}

func TestSamplingFactory_ConcurrentCountsStayExact(t *testing.T) {
	sampling, sink := newSamplingFixture(t, SamplingConfig{Initial: 1, Thereafter: 10})

	facade := sampling.GetFacade("app")

	const goroutines = 8
	const iterations = 1000

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()

			for range iterations {
				facade.Log(eclair.InfoLevel, "tick")
			}
		}()
	}

	wg.Wait()

	// Of 8000 records one passes the initial burst and every tenth after
	// it passes the cadence, regardless of interleaving.
	assert.Equal(t, uint64(800), sink.logs.Load())
}

func TestSamplingFactory_NilDelegate(t *testing.T) {
	_, err := NewSamplingFactory(nil, SamplingConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delegate factory cannot be nil")
}
