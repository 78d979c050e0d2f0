// Package configloader reads level configuration for the logging engine
// with viper: YAML files, raw YAML documents and environment variables.
// Loaded tables can be applied to a levels.Store, and Watch keeps a store
// in sync with a configuration file as it changes on disk.
package configloader

import (
	"bytes"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/DonKeyHot1/eclair"
	"github.com/DonKeyHot1/eclair/internal/constants"
	"github.com/DonKeyHot1/eclair/pkg/levels"
)

// LevelConfig is a decoded level table: a root threshold plus per-logger
// overrides keyed by logger name.
type LevelConfig struct {
	Root   eclair.Level
	Levels map[string]eclair.Level
}

// Apply replaces the store's table with this configuration.
func (c *LevelConfig) Apply(store *levels.Store) {
	store.Replace(c.Root, c.Levels)
}

// rawConfig mirrors the on-disk shape. Logger levels are a list of
// name/level pairs rather than a map: viper lowercases map keys, and
// logger names are case-sensitive.
type rawConfig struct {
	RootLevel string       `mapstructure:"root_level" yaml:"root_level"`
	Levels    []levelEntry `mapstructure:"levels" yaml:"levels"`
}

type levelEntry struct {
	Name  string `mapstructure:"name" yaml:"name"`
	Level string `mapstructure:"level" yaml:"level"`
}

// FromFile loads level configuration from a YAML file and merges
// environment overrides using the default prefix. An empty path searches
// the working directory for eclair.yaml.
func FromFile(path string) (*LevelConfig, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, constants.EnvPrefix)
	if err != nil {
		return nil, err
	}

	if path == "" {
		viperInstance.SetConfigName(constants.DefaultConfigName)
		viperInstance.SetConfigType(constants.DefaultConfigType)
		viperInstance.AddConfigPath(".")
	} else {
		viperInstance.SetConfigFile(path)
	}

	err = viperInstance.ReadInConfig()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read level configuration file").
			WithMetadata("path", path)
	}

	return fromViper(viperInstance)
}

// FromYAML loads level configuration from a YAML document provided as bytes.
func FromYAML(data []byte) (*LevelConfig, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType(constants.DefaultConfigType)

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read YAML level configuration")
	}

	return fromViper(viperInstance)
}

// FromEnv loads level configuration from environment variables using the
// provided prefix. Keys are normalized by uppercasing and replacing dots
// with underscores; per-logger levels come from a single <PREFIX>_LEVELS
// variable holding comma-separated name=level pairs.
func FromEnv(prefix string) (*LevelConfig, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, normalizePrefix(prefix))
	if err != nil {
		return nil, err
	}

	return fromViper(viperInstance)
}

func fromViper(viperInstance *viper.Viper) (*LevelConfig, error) {
	raw := rawConfig{RootLevel: viperInstance.GetString(constants.RootLevelKey)}

	err := decodeLevels(viperInstance, &raw)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// decodeLevels accepts either the list form of a document or the
// name=level pair list carried by a LEVELS environment variable.
func decodeLevels(viperInstance *viper.Viper, raw *rawConfig) error {
	value := viperInstance.Get(constants.LevelsKey)
	if value == nil {
		return nil
	}

	if list, ok := value.(string); ok {
		entries, err := parseLevelList(list)
		if err != nil {
			return err
		}

		raw.Levels = entries

		return nil
	}

	err := viperInstance.UnmarshalKey(constants.LevelsKey, &raw.Levels)
	if err != nil {
		return ewrap.Wrap(err, "failed to decode logger levels")
	}

	return nil
}

func applyRaw(raw rawConfig) (*LevelConfig, error) {
	rootName := raw.RootLevel
	if rootName == "" {
		rootName = constants.DefaultLevelName
	}

	root, err := eclair.ParseLevel(rootName)
	if err != nil {
		return nil, err
	}

	cfg := &LevelConfig{
		Root:   root,
		Levels: make(map[string]eclair.Level, len(raw.Levels)),
	}

	for _, entry := range raw.Levels {
		if entry.Name == "" {
			return nil, ewrap.New("logger level entry is missing a name")
		}

		level, err := eclair.ParseLevel(entry.Level)
		if err != nil {
			return nil, ewrap.Wrapf(err, "invalid level for logger %s", entry.Name)
		}

		cfg.Levels[entry.Name] = level
	}

	return cfg, nil
}

// parseLevelList parses comma-separated name=level pairs, e.g.
// "app.Users=debug,app.Grpc=off".
func parseLevelList(list string) ([]levelEntry, error) {
	var entries []levelEntry

	for _, pair := range strings.Split(list, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, level, found := strings.Cut(pair, "=")
		if !found {
			return nil, ewrap.New("level list entry must be name=level").
				WithMetadata("entry", pair)
		}

		entries = append(entries, levelEntry{
			Name:  strings.TrimSpace(name),
			Level: strings.TrimSpace(level),
		})
	}

	return entries, nil
}

func bindEnvironment(viperInstance *viper.Viper, prefix string) error {
	replacer := strings.NewReplacer(".", "_")
	viperInstance.SetEnvKeyReplacer(replacer)

	if prefix != "" {
		viperInstance.SetEnvPrefix(prefix)
	}

	viperInstance.AutomaticEnv()

	for _, key := range []string{constants.RootLevelKey, constants.LevelsKey} {
		err := viperInstance.BindEnv(key)
		if err != nil {
			return ewrap.Wrap(err, "failed to bind environment key").
				WithMetadata("key", key).
				WithMetadata("prefix", prefix)
		}
	}

	return nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return constants.EnvPrefix
	}

	prefix = strings.TrimSuffix(prefix, "_")
	prefix = strings.ReplaceAll(prefix, "-", "_")

	return strings.ToUpper(prefix)
}
