package configloader

import (
	"github.com/fsnotify/fsnotify"
	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/DonKeyHot1/eclair/internal/constants"
	"github.com/DonKeyHot1/eclair/pkg/levels"
)

// Watch loads the configuration file into the store and reapplies it
// whenever the file changes on disk, so level changes take effect without
// a restart. A change that fails to decode keeps the last good table and
// is reported through onError, which may be nil. The watch runs for the
// lifetime of the process; viper does not expose a way to stop it.
func Watch(path string, store *levels.Store, onError func(error)) error {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, constants.EnvPrefix)
	if err != nil {
		return err
	}

	viperInstance.SetConfigFile(path)

	err = viperInstance.ReadInConfig()
	if err != nil {
		return ewrap.Wrap(err, "failed to read level configuration file").
			WithMetadata("path", path)
	}

	cfg, err := fromViper(viperInstance)
	if err != nil {
		return err
	}

	cfg.Apply(store)

	viperInstance.OnConfigChange(func(_ fsnotify.Event) {
		reloaded, reloadErr := fromViper(viperInstance)
		if reloadErr != nil {
			if onError != nil {
				onError(reloadErr)
			}

			return
		}

		reloaded.Apply(store)
	})

	viperInstance.WatchConfig()

	return nil
}
