package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonKeyHot1/eclair"
	"github.com/DonKeyHot1/eclair/internal/constants"
)

func TestNewWithDefaults(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		service     string
		wantRoot    eclair.Level
	}{
		{
			name:        "non-production environment",
			environment: constants.NonProductionEnvironment,
			service:     "test-service",
			wantRoot:    eclair.DebugLevel,
		},
		{
			name:        "production environment",
			environment: "production",
			service:     "test-service",
			wantRoot:    eclair.InfoLevel,
		},
		{
			name:        "empty environment",
			environment: "",
			service:     "test-service",
			wantRoot:    eclair.InfoLevel,
		},
		{
			name:        "empty service name",
			environment: constants.NonProductionEnvironment,
			service:     "",
			wantRoot:    eclair.DebugLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, store, err := NewWithDefaults(tt.environment, tt.service)
			require.NoError(t, err)
			require.NotNil(t, logger)
			require.NotNil(t, store)

			assert.Equal(t, tt.wantRoot, store.Root())
			assert.True(t, logger.IsLevelEnabled(tt.wantRoot))

			if tt.wantRoot == eclair.InfoLevel {
				assert.False(t, logger.IsLevelEnabled(eclair.DebugLevel))
			}
		})
	}
}

func TestNewWithDefaultsStoreIsLive(t *testing.T) {
	logger, store, err := NewWithDefaults("production", "test-service")
	require.NoError(t, err)

	require.False(t, logger.IsLevelEnabled(eclair.TraceLevel))

	store.SetRoot(eclair.TraceLevel)

	assert.True(t, logger.IsLevelEnabled(eclair.TraceLevel))
}
