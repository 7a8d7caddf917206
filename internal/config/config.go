package config

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"aoc2023/internal/util"
)

// Bag is the number of cubes of each color in the cube game bag
type Bag struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

// Config provides configuration for the puzzle programs
type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Cubes struct {
		Bag Bag `yaml:"bag"`
	} `yaml:"cubes"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Cubes.Bag = Bag{
		Red:   12,
		Green: 13,
		Blue:  14,
	}

	return cfg
}

// Load will load the configuration.
// The YAML file is optional; environment variables prefixed with AOC override it.
func Load() (Config, error) {
	cfg := DefaultConfig()

	configFile := util.Getenv("AOC_CONFIG_FILE", "aoc.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	}

	if err := envconfig.Process("aoc", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
