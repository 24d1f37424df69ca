package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration after flags, environment and config
// file have been merged (in that order of precedence).
type Config struct {
	Dialect string
	Strict  bool
	Debug   bool
	Color   bool
}

const envPrefix = "QB"

// newViper returns a viper instance with the qb search paths and defaults.
func newViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)

	v.SetConfigName(".qb")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "qb"))
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("dialect", "mysql")
	v.SetDefault("strict", false)
	v.SetDefault("debug", false)
	v.SetDefault("color", true)

	return v
}

// loadConfig reads .env files and the config file, then resolves the merged
// values. configFile overrides the search paths when set.
func loadConfig(fs afero.Fs, v *viper.Viper, configFile string) (*Config, error) {
	// .env does not override the environment, .env.local does
	if err := loadEnvFile(fs, ".env", false); err != nil {
		return nil, err
	}
	if err := loadEnvFile(fs, ".env.local", true); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Dialect: v.GetString("dialect"),
		Strict:  v.GetBool("strict"),
		Debug:   v.GetBool("debug"),
		Color:   v.GetBool("color"),
	}, nil
}

func loadEnvFile(fs afero.Fs, name string, override bool) error {
	f, err := fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	for key, value := range vars {
		if _, exists := os.LookupEnv(key); exists && !override {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("set %s from %s: %w", key, name, err)
		}
	}
	return nil
}
