// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Optional YAML configuration for the rinexcsv command. Command line
// flags override whatever is set here.
//
// Example:
//
//	strict: false
//	summary: true
//	debug: 1
//	csv:
//	  output: out.csv
//	  header: true
type Config struct {
	Strict  bool `yaml:"strict"`
	Summary bool `yaml:"summary"`
	Debug   int  `yaml:"debug"`
	CSV     struct {
		Output string `yaml:"output"`
		Header bool   `yaml:"header"`
	} `yaml:"csv"`
}

// Return the configuration used when no file is given
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.CSV.Header = true
	return cfg
}

// Read and parse a YAML configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
