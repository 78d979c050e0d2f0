// Package levels implements an in-memory, hierarchical source of effective
// logging thresholds.
//
// Logger names form a hierarchy along "." and "/" boundaries: the logger
// "github.com/acme/app/service.UserService" inherits its threshold from
// "github.com/acme/app/service", then "github.com/acme/app", and so on up
// to the root. Levels can change while the application runs; every lookup
// sees the current table, which is what makes directive gating live.
package levels

import (
	"strings"
	"sync"

	"github.com/DonKeyHot1/eclair"
)

// Store maps logger names to thresholds with hierarchical inheritance.
// The zero value is not ready for use; create stores with NewStore. All
// methods are safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	root   eclair.Level
	levels map[string]eclair.Level
}

// Ensure Store implements eclair.LevelSource.
var _ eclair.LevelSource = (*Store)(nil)

// NewStore creates a store whose root threshold is root.
func NewStore(root eclair.Level) *Store {
	return &Store{
		root:   root,
		levels: make(map[string]eclair.Level),
	}
}

// EffectiveLevel resolves the threshold for name: the level set on the
// longest configured ancestor, or the root level when none is set. Name
// matching respects segment boundaries, so "app.users" configures
// "app.users.Cache" but never "app.usersearch".
func (s *Store) EffectiveLevel(name string) eclair.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for current := name; current != ""; current = parentName(current) {
		if level, ok := s.levels[current]; ok {
			return level
		}
	}

	return s.root
}

// Root returns the root threshold.
func (s *Store) Root() eclair.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.root
}

// SetRoot changes the root threshold.
func (s *Store) SetRoot(level eclair.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.root = level
}

// Set pins the threshold of a logger and all its descendants without an
// explicit level of their own. The empty name addresses the root.
func (s *Store) Set(name string, level eclair.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		s.root = level

		return
	}

	s.levels[name] = level
}

// Unset removes the explicit threshold of a logger, so it inherits again.
func (s *Store) Unset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.levels, name)
}

// Replace swaps the whole level table in one step. Configuration reloads
// use it so that readers never observe a half-applied table.
func (s *Store) Replace(root eclair.Level, levels map[string]eclair.Level) {
	copied := make(map[string]eclair.Level, len(levels))
	for name, level := range levels {
		copied[name] = level
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.root = root
	s.levels = copied
}

// Levels returns a copy of the explicitly configured thresholds.
func (s *Store) Levels() map[string]eclair.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make(map[string]eclair.Level, len(s.levels))
	for name, level := range s.levels {
		copied[name] = level
	}

	return copied
}

// parentName trims the last segment of a dotted or slashed logger name.
func parentName(name string) string {
	dot := strings.LastIndexByte(name, '.')
	slash := strings.LastIndexByte(name, '/')

	cut := dot
	if slash > cut {
		cut = slash
	}

	if cut <= 0 {
		return ""
	}

	return name[:cut]
}

// Static is a LevelSource pinned to a single threshold for every logger.
// Handy for tests and for applications without per-logger configuration.
type Static eclair.Level

// Ensure Static implements eclair.LevelSource.
var _ eclair.LevelSource = Static(0)

// EffectiveLevel returns the pinned threshold, whatever the name.
func (s Static) EffectiveLevel(_ string) eclair.Level {
	return eclair.Level(s)
}
