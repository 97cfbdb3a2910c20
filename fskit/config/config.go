package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	fskit "github.com/sorenhald/file-system-kit/fskit"
	"github.com/sorenhald/file-system-kit/fskit/options"
)

// Config stores all configuration of the library.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Fskit FskitConfig `mapstructure:"fskit"`
}

// FskitConfig stores fskit specific configurations.
type FskitConfig struct {
	Walk  WalkConfig  `mapstructure:"walk"`
	Write WriteConfig `mapstructure:"write"`
}

// WalkConfig stores directory traversal defaults.
type WalkConfig struct {
	TopDown        bool     `mapstructure:"topDown"`
	IgnorePatterns []string `mapstructure:"ignorePatterns"`
}

// WriteConfig stores write-if-changed defaults. Modes are octal strings.
type WriteConfig struct {
	Verbose  bool   `mapstructure:"verbose"`
	FileMode string `mapstructure:"fileMode"`
	DirMode  string `mapstructure:"dirMode"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("..")
		viper.AddConfigPath(fskit.DefaultConfigPath)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("fskit.walk.topDown", true)
	viper.SetDefault("fskit.walk.ignorePatterns", []string{})
	viper.SetDefault("fskit.write.verbose", false)
	viper.SetDefault("fskit.write.fileMode", fmt.Sprintf("%04o", uint32(fskit.DefaultFileMode)))
	viper.SetDefault("fskit.write.dirMode", fmt.Sprintf("%04o", uint32(fskit.DefaultDirMode)))

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. fskit.write.fileMode becomes FSKIT_WRITE_FILEMODE

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used.
			logger := fskit.GetLogger()
			logger.Debug().Msg("no config file found, using defaults")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}

// WalkOptions converts the walk section into walker options.
func (wc WalkConfig) WalkOptions() options.WalkOptions {
	opts := options.DefaultWalkOptions()
	opts.TopDown = wc.TopDown
	opts.IgnorePatterns = wc.IgnorePatterns
	return opts
}

// WriteOptions converts the write section into fileops options. Unparseable
// mode strings fall back to the built-in defaults.
func (wc WriteConfig) WriteOptions() options.WriteOptions {
	opts := options.DefaultWriteOptions()
	opts.Verbose = wc.Verbose
	if mode, err := strconv.ParseUint(wc.FileMode, 8, 32); err == nil && mode != 0 {
		opts.FileMode = os.FileMode(mode)
	}
	if mode, err := strconv.ParseUint(wc.DirMode, 8, 32); err == nil && mode != 0 {
		opts.DirMode = os.FileMode(mode)
	}
	return opts
}
