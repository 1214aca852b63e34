// Package config loads the analysis core's tunable parameters from a
// YAML file, with a well-known Config struct feeding the CLI entry
// points and sensible defaults when no file is given.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"blockcore/heuristic"
)

// Config is everything an analysis needs beyond the board and queue:
// the evaluator's tunables and a hard ceiling on search effort.
type Config struct {
	ScoreParams heuristic.ScoreParams `yaml:"score_params"`
	SearchLimit uint64                `yaml:"search_limit"`
}

// Default returns the configuration used when no file is given:
// heuristic.DefaultScoreParams and a generous but finite node budget.
func Default() Config {
	return Config{
		ScoreParams: heuristic.DefaultScoreParams(),
		SearchLimit: 50000,
	}
}

// Load reads and parses a YAML config file. Fields absent from the file
// keep Default's values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
