package eclair

import (
	"slices"
	"sync"

	"github.com/hyp3rd/ewrap"
)

// RecordHook observes emitted records for a chosen set of record kinds.
// Hooks run synchronously after the facade write; a returned error never
// affects the record, it is only collected for reporting.
type RecordHook interface {
	// OnRecord is called for every emitted record whose kind is listed
	// by Kinds.
	OnRecord(record Record) error

	// Kinds returns the record kinds this hook should be triggered for.
	Kinds() []RecordKind
}

// HookRegistry manages a collection of named record hooks and provides
// thread-safe access to them. The EmitHook adapter plugs the whole registry
// into a CallLogger, so hooks can be attached and detached while the logger
// is live.
type HookRegistry struct {
	mu      sync.RWMutex
	hooks   map[string]RecordHook
	onError func(error)
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{
		hooks: make(map[string]RecordHook),
	}
}

// Add registers a named hook.
func (r *HookRegistry) Add(name string, hook RecordHook) error {
	if name == "" {
		return ewrap.New("hook name cannot be empty")
	}

	if hook == nil {
		return ewrap.New("hook cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hooks[name]; exists {
		return ewrap.New("hook already registered").WithMetadata("name", name)
	}

	r.hooks[name] = hook

	return nil
}

// Remove removes a hook by name and reports whether it was present.
func (r *HookRegistry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hooks[name]; !exists {
		return false
	}

	delete(r.hooks, name)

	return true
}

// Get retrieves a hook by name.
func (r *HookRegistry) Get(name string) (RecordHook, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hook, exists := r.hooks[name]

	return hook, exists
}

// ForKind returns all hooks that should trigger for a given record kind.
func (r *HookRegistry) ForKind(kind RecordKind) []RecordHook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []RecordHook

	for _, hook := range r.hooks {
		if slices.Contains(hook.Kinds(), kind) {
			result = append(result, hook)
		}
	}

	return result
}

// Fire triggers all hooks registered for the record's kind and returns any
// errors they produced. Hooks run outside the registry lock, so a hook may
// modify the registry.
func (r *HookRegistry) Fire(record Record) []error {
	hooks := r.ForKind(record.Kind)
	if len(hooks) == 0 {
		return nil
	}

	var errors []error

	for _, hook := range hooks {
		err := hook.OnRecord(record)
		if err != nil {
			errors = append(errors, err)
		}
	}

	return errors
}

// OnError sets the handler the EmitHook adapter reports hook failures to.
func (r *HookRegistry) OnError(handler func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.onError = handler
}

// EmitHook adapts the registry to the engine's hook slot. Wire it in with
// ConfigBuilder.WithHook.
func (r *HookRegistry) EmitHook() EmitHook {
	return func(record Record) {
		errors := r.Fire(record)
		if len(errors) == 0 {
			return
		}

		r.mu.RLock()
		handler := r.onError
		r.mu.RUnlock()

		if handler == nil {
			return
		}

		for _, err := range errors {
			handler(err)
		}
	}
}

// FilterHook adapts a plain function to RecordHook for a fixed set of
// record kinds.
type FilterHook struct {
	// KindList contains the kinds this hook should trigger for.
	KindList []RecordKind
	// Handler is called when a matching record is processed.
	Handler func(record Record) error
}

// NewFilterHook creates a FilterHook with the given kinds and handler.
func NewFilterHook(kinds []RecordKind, handler func(record Record) error) *FilterHook {
	return &FilterHook{
		KindList: kinds,
		Handler:  handler,
	}
}

// OnRecord implements RecordHook.
func (h *FilterHook) OnRecord(record Record) error {
	if h.Handler != nil {
		return h.Handler(record)
	}

	return nil
}

// Kinds implements RecordHook.
func (h *FilterHook) Kinds() []RecordKind {
	return h.KindList
}
