package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GenericID is the entry returned for any pattern without its own entry.
const GenericID = "generic"

//go:embed catalog.yaml
var builtin []byte

// Entry is the remediation content for one pattern.
type Entry struct {
	Icon    string `yaml:"icon" json:"icon"`
	Summary string `yaml:"summary" json:"summary"`
	Remedy  string `yaml:"remedy" json:"remedy"`
	Extra   string `yaml:"extra,omitempty" json:"extra,omitempty"`
}

type file struct {
	Entries map[string]Entry `yaml:"entries"`
}

// Catalog is an immutable pattern → Entry mapping.
type Catalog struct {
	entries map[string]Entry
}

// Load parses the built-in catalog.
func Load() (*Catalog, error) {
	return Parse(builtin)
}

// Parse reads a catalog from YAML and validates it.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if errs := validate(f.Entries); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}
	return &Catalog{entries: f.Entries}, nil
}

// Lookup returns the entry for id, or the generic entry.
func (c *Catalog) Lookup(id string) Entry {
	if e, ok := c.entries[id]; ok {
		return e
	}
	return c.entries[GenericID]
}

// Has reports whether id has its own entry.
func (c *Catalog) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// IDs returns all entry IDs in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValidationError is a single problem with a catalog entry.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validate(entries map[string]Entry) []ValidationError {
	var errs []ValidationError
	if _, ok := entries[GenericID]; !ok {
		errs = append(errs, ValidationError{Field: "entries." + GenericID, Message: "is required"})
	}

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		e := entries[id]
		if e.Summary == "" {
			errs = append(errs, ValidationError{Field: "entries." + id + ".summary", Message: "is required"})
		}
		if e.Remedy == "" {
			errs = append(errs, ValidationError{Field: "entries." + id + ".remedy", Message: "is required"})
		}
	}
	return errs
}
