// Package log provides ready-made wiring for applications that want a
// CallLogger without assembling facades, caches and level stores by hand.
//
// NewWithDefaults configures the engine based on the environment name:
//
// - In non-production environments: Debug root level with readable text output
// - In production environments: Info root level with structured JSON output
// - Service name and environment included as attributes on every record
//
// The returned level store is live: changing it adjusts effective levels
// for subsequent calls without rebuilding the logger.
//
// Usage:
//
//	logger, store, err := log.NewWithDefaults("development", "user-service")
//	if err != nil {
//		panic(err)
//	}
//
//	logger.Info("service started")
//	store.Set("app.Users", eclair.TraceLevel)
package log

import (
	"log/slog"
	"os"

	"github.com/hyp3rd/ewrap"

	"github.com/DonKeyHot1/eclair"
	"github.com/DonKeyHot1/eclair/internal/constants"
	"github.com/DonKeyHot1/eclair/pkg/facade"
	"github.com/DonKeyHot1/eclair/pkg/levels"
)

// facadeCacheSize bounds the number of named facades kept alive at once.
const facadeCacheSize = 256

// NewWithDefaults creates a CallLogger with the specified environment and
// service. Non-production environments get a Debug root level and a text
// handler; anything else gets an Info root level and a JSON handler, both
// writing to stderr. The slog handler itself is fully permissive so that
// gating stays with the engine's level store, which is returned alongside
// the logger for runtime adjustments.
func NewWithDefaults(environment, service string) (*eclair.CallLogger, *levels.Store, error) {
	root := eclair.InfoLevel
	if environment == constants.NonProductionEnvironment {
		root = eclair.DebugLevel
	}

	store := levels.NewStore(root)

	options := &slog.HandlerOptions{Level: facade.SlogTraceLevel}

	var handler slog.Handler
	if environment == constants.NonProductionEnvironment {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}

	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", service),
		slog.String("environment", environment),
	})

	cached, err := facade.NewCachedFactory(facade.NewSlogFactory(handler), facadeCacheSize)
	if err != nil {
		return nil, nil, ewrap.Wrap(err, "failed to build facade cache")
	}

	logger, err := eclair.New(eclair.NewConfigBuilder().
		WithFacades(cached).
		WithLevels(store).
		Build())
	if err != nil {
		return nil, nil, ewrap.Wrap(err, "failed to create logger")
	}

	return logger, store, nil
}
