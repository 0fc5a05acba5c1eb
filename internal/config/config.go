package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"filterable/internal/tag"
)

// CurrentVersion is the only configuration version understood.
const CurrentVersion = "1"

// DefaultSuffix is appended to the snake_case type name of generated files.
const DefaultSuffix = "_filterable.go"

// ErrInvalid reports a configuration that parsed but cannot be used.
var ErrInvalid = errors.New("invalid config")

// File is the root of a configuration file.
type File struct {
	Version     string    `yaml:"version"`
	Tag         string    `yaml:"tag,omitempty"`
	Suffix      string    `yaml:"suffix,omitempty"`
	Output      string    `yaml:"output,omitempty"`
	UniquePaths bool      `yaml:"unique_paths,omitempty"`
	Packages    []Package `yaml:"packages"`
}

// Package selects the struct types to generate in one package.
type Package struct {
	Path  string        `yaml:"path"`
	Types StringOrArray `yaml:"types,omitempty"`
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.Tag == "" {
		f.Tag = tag.DefaultKey
	}

	if f.Suffix == "" {
		f.Suffix = DefaultSuffix
	}
}

// Validate checks the file for unsupported versions and duplicate packages.
// A type list applies to a single package, so it cannot follow a "..." pattern.
func (f *File) Validate() error {
	if f.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %q", ErrInvalid, f.Version)
	}

	seen := make(map[string]bool, len(f.Packages))
	for i, p := range f.Packages {
		if p.Path == "" {
			return fmt.Errorf("%w: packages[%d] has no path", ErrInvalid, i)
		}

		if len(p.Types) > 0 && strings.Contains(p.Path, "...") {
			return fmt.Errorf("%w: package %s lists types but matches several packages", ErrInvalid, p.Path)
		}

		if seen[p.Path] {
			return fmt.Errorf("%w: package %s listed twice", ErrInvalid, p.Path)
		}
		seen[p.Path] = true
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
