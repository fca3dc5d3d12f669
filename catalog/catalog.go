// Package catalog loads the static option sequence shown by the slash menu.
//
// Catalogs are TOML or YAML files with a list of options:
//
//	[[options]]
//	id = "sig"
//	label = "Signature"
//	insert = "-- \nJane"
//
// label and insert default to the id.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v4"

	"github.com/iw2rmb/slashpad/menu"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Format identifies a catalog encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type entry struct {
	ID     string `toml:"id" yaml:"id"`
	Label  string `toml:"label" yaml:"label"`
	Insert string `toml:"insert" yaml:"insert"`
}

type document struct {
	Options []entry `toml:"options" yaml:"options"`
}

// Defaults returns the built-in three-option catalog.
func Defaults() []menu.Option {
	return []menu.Option{
		{ID: "test1", Label: "This is a test of option 1", InsertText: "test1"},
		{ID: "test2", Label: "This is a test of option 2", InsertText: "test2"},
		{ID: "test3", Label: "This is a test of option 3", InsertText: "test3"},
	}
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and parses the catalog at path.
func Load(path string) ([]menu.Option, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	opts, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes data in format into options. An empty catalog reports
// menu.ErrEmptyOptionSet; duplicate or missing ids are errors.
func Parse(data []byte, format Format) ([]menu.Option, error) {
	var doc document
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return toOptions(doc.Options)
}

func toOptions(entries []entry) ([]menu.Option, error) {
	out := make([]menu.Option, 0, len(entries))
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("option %d: missing id", i)
		}
		if first, dup := seen[id]; dup {
			return nil, fmt.Errorf("option %d: duplicate id %q (first at %d)", i, id, first)
		}
		seen[id] = i

		opt := menu.Option{ID: id, Label: e.Label, InsertText: e.Insert}
		if opt.Label == "" {
			opt.Label = id
		}
		if opt.InsertText == "" {
			opt.InsertText = id
		}
		out = append(out, opt)
	}
	if err := menu.ValidateOptions(out); err != nil {
		return nil, err
	}
	return out, nil
}
