package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the CLI configuration
type Config struct {
	Theme     string
	ThemeFile string
	MaxWidth  int
	Debug     bool
}

// Default returns the built-in configuration used when no config file or
// environment overrides exist.
func Default() *Config {
	return &Config{
		Theme:    "default",
		MaxWidth: 0,
	}
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".richcobra")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "richcobra"))

	// Set environment variable prefix
	viper.SetEnvPrefix("RICHCOBRA")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("theme", "default")
	viper.SetDefault("theme_file", "")
	viper.SetDefault("max_width", 0)
	viper.SetDefault("debug", false)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		Theme:     viper.GetString("theme"),
		ThemeFile: viper.GetString("theme_file"),
		MaxWidth:  viper.GetInt("max_width"),
		Debug:     viper.GetBool("debug"),
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("theme", cfg.Theme)
	viper.Set("theme_file", cfg.ThemeFile)
	viper.Set("max_width", cfg.MaxWidth)
	viper.Set("debug", cfg.Debug)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "richcobra")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configPath, ".richcobra.yaml")
	return viper.WriteConfigAs(configFile)
}

// ConfigFilePath returns the path SaveConfig writes to.
func ConfigFilePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "richcobra", ".richcobra.yaml"), nil
}
