package store

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where almanac keeps its data: the calendar file and
// the settings database both live under one root directory.
type Config interface {
	CalendarPath() string
	BasePath() string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("root", "~/.almanac")
	viper.SetConfigName(".almanac") // .yaml is implicit
	viper.SetEnvPrefix("ALMANAC")
	viper.AutomaticEnv()

	if override := os.Getenv("ALMANAC_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	root, err := homedir.Expand(viper.GetString("root"))
	if err != nil {
		return nil, fmt.Errorf("store: expand root: %w", err)
	}

	return &fileConfig{Root: root}, nil
}

type fileConfig struct {
	Root string `json:"root"`
}

// CalendarPath is the single events.ics file holding the whole event
// collection.
func (f *fileConfig) CalendarPath() string {
	return filepath.Join(f.Root, "events.ics")
}

// BasePath is the diskv database directory for categories and themes.
func (f *fileConfig) BasePath() string {
	return filepath.Join(f.Root, "db")
}
