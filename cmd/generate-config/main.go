package main

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"aoc2023/internal/config"
)

func writeDefaultConfig(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(config.DefaultConfig())
}

func main() {
	if err := writeDefaultConfig(os.Stdout); err != nil {
		panic(err)
	}
}
