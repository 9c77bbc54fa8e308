package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the distromatch configuration
type Config struct {
	CatalogDir string `mapstructure:"catalogDir"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	Top        int    `mapstructure:"top"`
	Quiet      bool   `mapstructure:"quiet"`
	Verbose    bool   `mapstructure:"verbose"`
	Listen     string `mapstructure:"listen"`
}

// LoadConfig loads configuration from defaults, config files and environment
func LoadConfig() (*Config, error) {
	viper.SetDefault("catalogDir", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("top", 3)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("listen", ":8080")

	// Config file locations
	configPaths := []string{".distromatchrc.json", ".distromatchrc.yaml", ".distromatchrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("DISTROMATCH")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Top < 1 {
		return fmt.Errorf("top must be at least 1")
	}

	if config.CatalogDir != "" {
		info, err := os.Stat(config.CatalogDir)
		if err != nil {
			return fmt.Errorf("catalog directory not accessible: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("catalog path is not a directory: %s", config.CatalogDir)
		}
	}

	return nil
}

// SaveConfig saves the current configuration to a file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
