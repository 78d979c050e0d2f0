package eclair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		errContains string
	}{
		{
			name: "missing facade factory",
			config: Config{
				Levels: staticLevels(InfoLevel),
			},
			errContains: "facade factory is required",
		},
		{
			name: "missing level source",
			config: Config{
				Facades: NoopFacadeFactory{},
			},
			errContains: "level source is required",
		},
		{
			name: "negative caller skip",
			config: Config{
				Facades:    NoopFacadeFactory{},
				Levels:     staticLevels(InfoLevel),
				CallerSkip: -1,
			},
			errContains: "caller skip cannot be negative",
		},
		{
			name: "nil hook",
			config: Config{
				Facades: NoopFacadeFactory{},
				Levels:  staticLevels(InfoLevel),
				Hooks:   []EmitHook{nil},
			},
			errContains: "emit hook cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.config)
			require.Error(t, err)
			assert.Nil(t, logger)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	require.Error(t, validateConfig(nil))
}

func TestNewMinimalConfig(t *testing.T) {
	logger, err := New(Config{
		Facades: NoopFacadeFactory{},
		Levels:  staticLevels(InfoLevel),
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestConfigBuilder(t *testing.T) {
	hook := func(Record) {}
	printer := stubPrinter{text: "fixed"}

	config := NewConfigBuilder().
		WithFacades(NoopFacadeFactory{}).
		WithLevels(staticLevels(DebugLevel)).
		WithDefaultPrinter(printer).
		WithHook(hook).
		WithCallerSkip(2).
		Build()

	assert.Equal(t, NoopFacadeFactory{}, config.Facades)
	assert.Equal(t, staticLevels(DebugLevel), config.Levels)
	assert.Equal(t, printer, config.DefaultPrinter)
	assert.Len(t, config.Hooks, 1)
	assert.Equal(t, 2, config.CallerSkip)

	logger, err := New(config)
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestConfigBuilderCopiesHooks(t *testing.T) {
	builder := NewConfigBuilder().
		WithFacades(NoopFacadeFactory{}).
		WithLevels(staticLevels(DebugLevel)).
		WithHook(func(Record) {})

	first := builder.Build()

	builder.WithHook(func(Record) {})
	second := builder.Build()

	assert.Len(t, first.Hooks, 1)
	assert.Len(t, second.Hooks, 2)
}
