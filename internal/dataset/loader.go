package dataset

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

// ErrNotFound is returned when no embedded fixture has the requested name.
var ErrNotFound = errors.New("dataset: fixture not found")

// Load reads an embedded fixture by name and validates it.
func Load(name string) (*Descriptor, error) {
	data, err := fixtureFS.ReadFile("fixtures/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(List(), ", "))
	}
	d, err := Parse(data, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("fixture %q: %w", name, err)
	}
	if d.Name == "" {
		d.Name = name
	}
	return d, d.Validate()
}

// List returns the names of all embedded fixtures, sorted.
func List() []string {
	entries, _ := fixtureFS.ReadDir("fixtures")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// LoadFromPath reads a descriptor file (YAML or JSON) and validates it.
// Without a name in the file, the base name of path is used.
func LoadFromPath(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	ext := filepath.Ext(path)
	d, err := Parse(data, ext)
	if err != nil {
		return nil, err
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return d, d.Validate()
}

// Resolve loads ref as a file when it names an existing path, otherwise as an
// embedded fixture.
func Resolve(ref string) (*Descriptor, error) {
	if _, err := os.Stat(ref); err == nil {
		return LoadFromPath(ref)
	}
	return Load(ref)
}

// Parse decodes a descriptor. ext is a format hint (".json", ".yaml", ".yml");
// when empty the format is detected from the first non-space character.
func Parse(data []byte, ext string) (*Descriptor, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseJSON(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse descriptor json: %w", err)
	}
	return &d, nil
}

func parseYAML(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse descriptor yaml: %w", err)
	}
	return &d, nil
}
