package main

import (
	"fmt"
	"os"

	"github.com/specterops/redisgraph"
	"gopkg.in/yaml.v3"
)

const (
	envRedisURL = "REDIS_URL"
	envGraph    = "REDISGRAPH_GRAPH"
)

// loadConfig builds the configuration from, in increasing order of precedence, the YAML file at path (when given)
// and the environment.
func loadConfig(path string, getenv func(string) string) (redisgraph.Config, error) {
	var cfg redisgraph.Config

	if path != "" {
		if content, err := os.ReadFile(path); err != nil {
			return cfg, err
		} else if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if url := getenv(envRedisURL); url != "" {
		cfg.Transport.Connection = url
	}

	if graphName := getenv(envGraph); graphName != "" {
		cfg.Graph = graphName
	}

	return cfg, nil
}

func applyFlags(cfg *redisgraph.Config, opts *options) {
	if opts.url != "" {
		cfg.Transport.Connection = opts.url
	}

	if opts.graphName != "" {
		cfg.Graph = opts.graphName
	}
}
