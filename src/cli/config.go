// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by [loadConfig].
const (
	EnvConfigFile       = "ESDB_SAMPLE_CONFIG_FILE"
	EnvConnectionString = "ESDB_CONNECTION_STRING"
	EnvPassword         = "ESDB_PASSWORD"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the sample configuration file.
//
// Every value is optional. Command-line flags take precedence over the file,
// and the ESDB_CONNECTION_STRING and ESDB_PASSWORD environment variables take
// precedence over the file but not over flags.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Connection: how to reach EventStoreDB
	Connection struct {
		ConnectionString string `json:"connectionString,omitempty" yaml:"connectionString,omitempty"`
		CertFolder       string `json:"certFolder,omitempty" yaml:"certFolder,omitempty"`
		Username         string `json:"username,omitempty" yaml:"username,omitempty"`
		// Password: prefer ESDB_PASSWORD over storing it in the file
		Password string `json:"password,omitempty" yaml:"password,omitempty"`
		Host     string `json:"host,omitempty" yaml:"host,omitempty"`
		Cert     string `json:"cert,omitempty" yaml:"cert,omitempty"`
		Key      string `json:"key,omitempty" yaml:"key,omitempty"`
		CA       string `json:"ca,omitempty" yaml:"ca,omitempty"`
	} `json:"connection" yaml:"connection"`

	// Output: rendering of events and log lines
	Output struct {
		Format    string `json:"format,omitempty" yaml:"format,omitempty"`
		LogFormat string `json:"logFormat,omitempty" yaml:"logFormat,omitempty"`
	} `json:"output" yaml:"output"`

	// Sample: shape of the generated account history
	Sample struct {
		AccountName string `json:"accountName,omitempty" yaml:"accountName,omitempty"`
		Updates     int    `json:"updates,omitempty" yaml:"updates,omitempty"`
		ReadCount   uint64 `json:"readCount,omitempty" yaml:"readCount,omitempty"`
	} `json:"sample" yaml:"sample"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything other than .yaml or .yml is read as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads the sample configuration from a JSON or YAML file.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. ESDB_SAMPLE_CONFIG_FILE environment variable is checked if configPath is empty
//  2. Config file values are loaded (if a path is known)
//  3. Environment variables override config file values (ESDB_CONNECTION_STRING, ESDB_PASSWORD)
//
// Flags are applied on top by the caller.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		if config.Sample.Updates < 0 {
			config.Sample.Updates = 0
		}
	}

	if v := os.Getenv(EnvConnectionString); v != "" {
		config.Connection.ConnectionString = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		config.Connection.Password = v
	}

	return config, nil
}
