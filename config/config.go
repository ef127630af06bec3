// config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

// SourceConfig describes one tabular data source. Path is where the CSV
// lives (or is saved to) locally; URL, when set, means the file is
// downloaded to Path at startup before loading.
type SourceConfig struct {
	Path string `yaml:"path"`
	URL  string `yaml:"url"`
}

type SourcesConfig struct {
	Listings     SourceConfig `yaml:"listings"`
	Demographics SourceConfig `yaml:"demographics"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Sources SourcesConfig `yaml:"sources"`
}

var AppConfig Config

// LoadConfig reads configuration from the YAML file at configPath, applies
// defaults for anything unset, then applies environment variable overrides
// (SERVER_PORT, LISTINGS_CSV, DEMOGRAPHICS_CSV). A missing config file is
// not fatal; defaults and env cover the common local setup.
func LoadConfig(configPath string) error {
	AppConfig = Config{}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		} else if err := yaml.Unmarshal(file, &AppConfig); err != nil {
			return fmt.Errorf("failed to unmarshal config %s: %w", configPath, err)
		}
	}

	applyDefaults()
	applyEnvOverrides()
	return nil
}

func applyDefaults() {
	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8080"
	}
	if AppConfig.Sources.Listings.Path == "" {
		AppConfig.Sources.Listings.Path = "data/listings.csv"
	}
	if AppConfig.Sources.Demographics.Path == "" {
		AppConfig.Sources.Demographics.Path = "data/zip_demographics.csv"
	}
}

func applyEnvOverrides() {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		AppConfig.Server.Port = v
	}
	if v := os.Getenv("LISTINGS_CSV"); v != "" {
		AppConfig.Sources.Listings.Path = v
	}
	if v := os.Getenv("DEMOGRAPHICS_CSV"); v != "" {
		AppConfig.Sources.Demographics.Path = v
	}
}
