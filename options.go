package jsonval

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DecodeOptions controls how Decode treats its input.
type DecodeOptions struct {
	// AllowFragments accepts a top-level scalar (string, number, bool
	// or null), not just an object or array.
	AllowFragments bool `yaml:"allow_fragments"`
}

// EncodeOptions controls the output formatting of Encode. The options
// are forwarded to the underlying serializer; this package adds no
// formatting of its own.
type EncodeOptions struct {
	Pretty bool   `yaml:"pretty"`
	Indent string `yaml:"indent"`
}

// Options bundles codec options for tools that load them from a file.
type Options struct {
	Decode DecodeOptions `yaml:"decode"`
	Encode EncodeOptions `yaml:"encode"`
}

// DefaultOptions creates Options with default values: strict roots,
// compact output.
func DefaultOptions() *Options {
	return &Options{
		Decode: DecodeOptions{
			AllowFragments: false,
		},
		Encode: EncodeOptions{
			Pretty: false,
			Indent: "  ",
		},
	}
}

// LoadOptions loads codec options from a YAML file, overlaying the
// defaults.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}

	return opts, nil
}

// FindOptionsFile searches for an options file in the current directory
// and its parents, returning the empty string when none is found.
func FindOptionsFile() string {
	optionNames := []string{".jsonval.yml", ".jsonval.yaml", "jsonval.yml", "jsonval.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range optionNames {
			optionsPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(optionsPath); err == nil {
				return optionsPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached the filesystem root
			break
		}
		currentDir = parentDir
	}

	return ""
}
