/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML shape describing a content API endpoint and the
// resources it serves:
//
//	baseURL: https://cms.example.com
//	token: ${CMS_API_TOKEN}
//	resources:
//	  - name: articles
//	    uniqueField: slug
//	  - name: authors
//	    defaultLocale: de
type Config struct {
	BaseURL   string               `yaml:"baseURL"`
	Token     string               `yaml:"token,omitempty"`
	Resources []ResourceDescriptor `yaml:"resources"`
}

// LoadConfig parses a YAML resource configuration.
func LoadConfig(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("config is missing baseURL")
	}
	for i, res := range cfg.Resources {
		if res.Name == "" {
			return nil, fmt.Errorf("resource %d is missing a name", i)
		}
	}
	// Token may reference an environment variable.
	cfg.Token = os.ExpandEnv(cfg.Token)
	return &cfg, nil
}

// LoadConfigFile parses a YAML resource configuration from a file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// RegisterAll registers every resource of the config under its name.
func (c *Config) RegisterAll() {
	for _, res := range c.Resources {
		RegisterNamed(res)
	}
}
