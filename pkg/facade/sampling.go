package facade

import (
	"sync"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"

	"github.com/DonKeyHot1/eclair"
)

const (
	// DefaultSamplingInitial is the number of records per level forwarded
	// before sampling starts.
	DefaultSamplingInitial = 100
	// DefaultSamplingThereafter is the sampling rate (1/N) once sampling
	// has started.
	DefaultSamplingThereafter = 10
)

// SamplingConfig bounds the volume of repetitive low-severity records.
type SamplingConfig struct {
	// Initial is the number of records per level to forward before
	// sampling starts. Zero or less selects DefaultSamplingInitial.
	Initial int
	// Thereafter keeps one record in N after the initial burst. One or
	// less keeps every record.
	Thereafter int
}

// levelCounters tracks record counts for one logger name. Only levels
// below Warn are ever counted.
type levelCounters [int(eclair.WarnLevel)]atomic.Uint64

// SamplingFactory decorates a FacadeFactory and drops a share of the
// low-severity records flowing through it. Records at Warn and above
// always pass, as do records carrying a cause. Counts are kept per logger
// name and per level, so a noisy component cannot silence a quiet one.
//
// Counters live in the factory and survive facade re-resolution, so a
// CachedFactory can sit on either side. Put the cache outermost to keep
// the per-emission wrapper allocation off the hot path.
type SamplingFactory struct {
	delegate   eclair.FacadeFactory
	initial    uint64
	thereafter uint64

	mu       sync.Mutex
	counters map[string]*levelCounters
}

// Ensure SamplingFactory implements eclair.FacadeFactory.
var _ eclair.FacadeFactory = (*SamplingFactory)(nil)

// NewSamplingFactory wraps delegate with the sampling bounds of cfg.
func NewSamplingFactory(delegate eclair.FacadeFactory, cfg SamplingConfig) (*SamplingFactory, error) {
	if delegate == nil {
		return nil, ewrap.New("delegate factory cannot be nil")
	}

	if cfg.Initial <= 0 {
		cfg.Initial = DefaultSamplingInitial
	}

	if cfg.Thereafter <= 0 {
		cfg.Thereafter = DefaultSamplingThereafter
	}

	return &SamplingFactory{
		delegate:   delegate,
		initial:    uint64(cfg.Initial),
		thereafter: uint64(cfg.Thereafter),
		counters:   make(map[string]*levelCounters),
	}, nil
}

// GetFacade returns a sampling facade over the delegate's facade for name.
func (f *SamplingFactory) GetFacade(name string) eclair.Facade {
	return &sampledFacade{
		next:     f.delegate.GetFacade(name),
		factory:  f,
		counters: f.countersFor(name),
	}
}

func (f *SamplingFactory) countersFor(name string) *levelCounters {
	f.mu.Lock()
	defer f.mu.Unlock()

	counters, ok := f.counters[name]
	if !ok {
		counters = &levelCounters{}
		f.counters[name] = counters
	}

	return counters
}

// allow reports whether the next record at level passes the sampler.
func (f *SamplingFactory) allow(counters *levelCounters, level eclair.Level) bool {
	// Warnings and above are never sampled so that critical events always
	// reach the backend.
	if level >= eclair.WarnLevel {
		return true
	}

	count := counters[level].Add(1)

	if count <= f.initial {
		return true
	}

	if f.thereafter <= 1 {
		return true
	}

	return (count-f.initial)%f.thereafter == 0
}

// sampledFacade applies the factory's sampling decision before forwarding.
type sampledFacade struct {
	next     eclair.Facade
	factory  *SamplingFactory
	counters *levelCounters
}

// Ensure sampledFacade implements eclair.Facade.
var _ eclair.Facade = (*sampledFacade)(nil)

// Log forwards the record when the sampler allows it.
func (s *sampledFacade) Log(level eclair.Level, msg string) {
	if !s.factory.allow(s.counters, level) {
		return
	}

	s.next.Log(level, msg)
}

// LogError always forwards. Records with a cause describe failures and are
// too valuable to drop.
func (s *sampledFacade) LogError(level eclair.Level, msg string, cause error) {
	s.next.LogError(level, msg, cause)
}
