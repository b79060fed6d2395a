// Package config loads the YAML settings for the qrsdet CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SerialConfig describes a live serial acquisition source.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// Config is the top-level CLI configuration. A Config read from disk is
// sparse by design; LoadFile parses it over Default, so fields the file
// does not set keep their Default values.
type Config struct {
	Input   string       `yaml:"input"`
	Serial  SerialConfig `yaml:"serial"`
	Output  string       `yaml:"output"`
	Verbose bool         `yaml:"verbose"`
}

// Default returns the CLI's baseline configuration.
func Default() *Config {
	return &Config{
		Output: "output.csv",
		Serial: SerialConfig{
			Port: "/dev/ttyUSB0",
			Baud: 115200,
		},
	}
}

// LoadFile reads and parses a YAML config file, filling unset fields from
// Default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}
