package facade

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hyp3rd/ewrap"

	"github.com/DonKeyHot1/eclair"
)

// DefaultCacheSize bounds the facade cache of a CachedFactory.
const DefaultCacheSize = 512

// CachedFactory memoizes the facades of a delegate factory by logger name.
// Facade construction allocates (slog.With, zap.Named) while the engine
// asks for a facade on every record, so memoization keeps the hot path
// flat. The LRU bound protects against unbounded logger name sets.
type CachedFactory struct {
	delegate eclair.FacadeFactory
	cache    *lru.Cache[string, eclair.Facade]
}

// Ensure CachedFactory implements eclair.FacadeFactory.
var _ eclair.FacadeFactory = (*CachedFactory)(nil)

// NewCachedFactory wraps delegate with an LRU of size entries. A size of
// zero or less falls back to DefaultCacheSize.
func NewCachedFactory(delegate eclair.FacadeFactory, size int) (*CachedFactory, error) {
	if delegate == nil {
		return nil, ewrap.New("delegate factory cannot be nil")
	}

	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, eclair.Facade](size)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to create facade cache")
	}

	return &CachedFactory{delegate: delegate, cache: cache}, nil
}

// GetFacade returns the cached facade for name, consulting the delegate on
// a miss. Concurrent misses may both build a facade; the copies are
// equivalent and the extra one is dropped by the cache.
func (f *CachedFactory) GetFacade(name string) eclair.Facade {
	if facade, ok := f.cache.Get(name); ok {
		return facade
	}

	facade := f.delegate.GetFacade(name)
	f.cache.Add(name, facade)

	return facade
}
