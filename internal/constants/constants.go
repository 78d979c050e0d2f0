// Package constants provides fixed values shared across the logging
// engine's support packages: environment variable naming, configuration
// file resolution and level defaults. Keeping them here ensures the config
// loader and the level store agree without importing one another.
package constants

const (
	// NonProductionEnvironment is the environment name for non-production
	// environments.
	NonProductionEnvironment = "development"

	// EnvPrefix namespaces the environment variables read by the config
	// loader, e.g. ECLAIR_ROOT_LEVEL.
	EnvPrefix = "ECLAIR"

	// DefaultConfigName is the base name of the configuration file the
	// loader searches for when no explicit path is given.
	DefaultConfigName = "eclair"

	// DefaultConfigType is the configuration format assumed when the file
	// extension does not reveal one.
	DefaultConfigType = "yaml"

	// DefaultLevelName is the effective level of the root logger when no
	// configuration names one.
	DefaultLevelName = "info"

	// LevelsKey is the configuration section holding per-logger levels.
	LevelsKey = "levels"

	// RootLevelKey is the configuration key holding the root level.
	RootLevelKey = "root_level"
)
