package cards

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a YAML card table keyed by card id and merges it over
// the built-in catalog. Entries with an unknown type are rejected rather
// than silently defaulted; a card that cannot be classified cannot be
// played correctly.
func LoadCatalog(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read card catalog: %w", err)
	}

	var loaded map[string]Card
	if err := yaml.Unmarshal(b, &loaded); err != nil {
		return fmt.Errorf("parse card catalog %s: %w", path, err)
	}

	for name, c := range loaded {
		switch c.Type {
		case TypeTroop, TypeBuilding, TypeSpell:
		default:
			return fmt.Errorf("card %q: unknown type %q", name, c.Type)
		}
		c.Normalize(name)
		builtin[name] = c
	}
	return nil
}
