package eclair

import "github.com/hyp3rd/ewrap"

// Config holds the wiring of a CallLogger: where log lines go, where
// effective thresholds come from, and how values are rendered.
type Config struct {
	// Facades resolves named logger facades. Required.
	Facades FacadeFactory

	// Levels reports the effective threshold per logger name. Required.
	Levels LevelSource

	// DefaultPrinter renders values for directives that carry no printer
	// of their own. When nil the built-in printer is used.
	DefaultPrinter Printer

	// Hooks observe every emitted record, in registration order. Hooks
	// run after the record has reached its facade and must not block.
	Hooks []EmitHook

	// CallerSkip skips additional stack frames when resolving the logger
	// identity of manual log calls. Set it when the manual API is hidden
	// behind a helper of the host application.
	CallerSkip int
}

func validateConfig(config *Config) error {
	if config == nil {
		return ewrap.New("logger config cannot be nil")
	}

	if config.Facades == nil {
		return ewrap.New("facade factory is required")
	}

	if config.Levels == nil {
		return ewrap.New("level source is required")
	}

	if config.CallerSkip < 0 {
		return ewrap.New("caller skip cannot be negative").WithMetadata("callerSkip", config.CallerSkip)
	}

	for i, hook := range config.Hooks {
		if hook == nil {
			return ewrap.New("emit hook cannot be nil").WithMetadata("index", i)
		}
	}

	return nil
}

// ConfigBuilder provides a fluent API for assembling a Config.
//
// Example:
//
//	config := eclair.NewConfigBuilder().
//		WithFacades(facade.NewSlogFactory(handler)).
//		WithLevels(store).
//		Build()
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates an empty builder. Facades and Levels must be
// supplied before the resulting config can construct a CallLogger.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithFacades sets the facade factory.
func (b *ConfigBuilder) WithFacades(factory FacadeFactory) *ConfigBuilder {
	b.config.Facades = factory

	return b
}

// WithLevels sets the effective-level source.
func (b *ConfigBuilder) WithLevels(source LevelSource) *ConfigBuilder {
	b.config.Levels = source

	return b
}

// WithDefaultPrinter sets the printer used by directives without one.
func (b *ConfigBuilder) WithDefaultPrinter(printer Printer) *ConfigBuilder {
	b.config.DefaultPrinter = printer

	return b
}

// WithHook appends an emit hook.
func (b *ConfigBuilder) WithHook(hook EmitHook) *ConfigBuilder {
	b.config.Hooks = append(b.config.Hooks, hook)

	return b
}

// WithCallerSkip sets the extra stack frames skipped when resolving manual
// log identities.
func (b *ConfigBuilder) WithCallerSkip(skip int) *ConfigBuilder {
	b.config.CallerSkip = skip

	return b
}

// Build returns the accumulated config. Validation happens in New, so the
// builder itself never fails.
func (b *ConfigBuilder) Build() Config {
	config := b.config
	config.Hooks = append([]EmitHook(nil), b.config.Hooks...)

	return config
}
