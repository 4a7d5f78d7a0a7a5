package catalog

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed devices.json
var builtinCatalog []byte

// ParseJSON decodes a devices.json document.
func ParseJSON(data []byte) ([]RawDevice, error) {
	var doc rawCatalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SourceError{
			Message: "failed to parse JSON",
			Cause:   err,
		}
	}
	return checkDocument(doc)
}

// ParseYAML decodes a catalog document written as YAML.
func ParseYAML(data []byte) ([]RawDevice, error) {
	var doc rawCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SourceError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}
	return checkDocument(doc)
}

func checkDocument(doc rawCatalog) ([]RawDevice, error) {
	if doc.Devices == nil {
		return nil, &SourceError{
			Message: "catalog must have a devices list",
		}
	}
	return doc.Devices, nil
}

// LoadFile reads a catalog file. The format is chosen by extension:
// .json, .yaml or .yml.
func LoadFile(path string) ([]RawDevice, error) {
	var parse func([]byte) ([]RawDevice, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parse = ParseJSON
	case ".yaml", ".yml":
		parse = ParseYAML
	default:
		return nil, &SourceError{
			File:    path,
			Message: "cannot load catalog",
			Cause:   ErrUnsupportedFormat,
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	raw, err := parse(data)
	if err != nil {
		if se, ok := err.(*SourceError); ok {
			se.File = path
			return nil, se
		}
		return nil, &SourceError{
			File:    path,
			Message: err.Error(),
		}
	}
	return raw, nil
}

// Builtin returns the raw catalog compiled into the binary.
func Builtin() ([]RawDevice, error) {
	raw, err := ParseJSON(builtinCatalog)
	if err != nil {
		if se, ok := err.(*SourceError); ok {
			se.File = DefaultSource
		}
		return nil, err
	}
	return raw, nil
}

// readSource loads the catalog at path, or the builtin catalog when path is
// empty, and returns it with the name used in diagnostics.
func readSource(path string) ([]RawDevice, string, error) {
	if path == "" {
		raw, err := Builtin()
		return raw, DefaultSource, err
	}
	raw, err := LoadFile(path)
	return raw, filepath.Base(path), err
}
