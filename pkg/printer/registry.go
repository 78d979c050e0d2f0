package printer

import (
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/DonKeyHot1/eclair"
)

// Registry manages named printers for reference from configuration and
// pack assembly. Registration order matters: the first registered printer
// is the registry default, the one Resolve falls back to for unknown
// names.
type Registry struct {
	mu       sync.RWMutex
	printers map[string]eclair.Printer
	aliases  map[string]string
	order    []string
}

// NewRegistry creates an empty printer registry.
func NewRegistry() *Registry {
	return &Registry{
		printers: make(map[string]eclair.Printer),
		aliases:  make(map[string]string),
	}
}

// Register adds a printer under the provided name.
func (r *Registry) Register(name string, printer eclair.Printer) error {
	if name == "" {
		return ewrap.New("printer name cannot be empty")
	}

	if printer == nil {
		return ewrap.New("printer cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.printers[name]; exists {
		return ewrap.New("printer already registered").WithMetadata("name", name)
	}

	if _, exists := r.aliases[name]; exists {
		return ewrap.New("printer name already used as alias").WithMetadata("name", name)
	}

	r.printers[name] = printer
	r.order = append(r.order, name)

	return nil
}

// MustRegister registers a printer and panics if registration fails.
func (r *Registry) MustRegister(name string, printer eclair.Printer) {
	err := r.Register(name, printer)
	if err != nil {
		panic(err)
	}
}

// Alias makes alias resolve to the printer registered under name.
func (r *Registry) Alias(alias, name string) error {
	if alias == "" {
		return ewrap.New("printer alias cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.printers[alias]; exists {
		return ewrap.New("printer alias shadows a registered name").WithMetadata("alias", alias)
	}

	if _, exists := r.aliases[alias]; exists {
		return ewrap.New("printer alias already registered").WithMetadata("alias", alias)
	}

	if _, exists := r.printers[name]; !exists {
		return ewrap.New("printer alias target not registered").WithMetadata("name", name)
	}

	r.aliases[alias] = name

	return nil
}

// Get retrieves a printer by name or alias.
func (r *Registry) Get(name string) (eclair.Printer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if target, ok := r.aliases[name]; ok {
		name = target
	}

	printer, ok := r.printers[name]

	return printer, ok
}

// Resolve returns the printer for name, falling back to Default for the
// empty or an unknown name. It never returns nil.
func (r *Registry) Resolve(name string) eclair.Printer {
	if name != "" {
		if printer, ok := r.Get(name); ok {
			return printer
		}
	}

	return r.Default()
}

// Default returns the first registered printer, or the engine's built-in
// printer for an empty registry.
func (r *Registry) Default() eclair.Printer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) > 0 {
		return r.printers[r.order[0]]
	}

	return eclair.DefaultPrinter()
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}
