// Package tables holds the versioned reference data driving the
// normalization and classification engine: descriptor prefix codes,
// stopwords, gateway prefixes, the merchant dictionary and the expense
// nature rule tables. The data is fixed at build or load time; the
// engine never mutates it, so classification for a given table version
// is fully reproducible.
package tables

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// PrefixRule maps a descriptor prefix to its standardized code.
// Rules are evaluated in order; the first matching prefix wins, so more
// specific prefixes must come before their shorter variants.
type PrefixRule struct {
	Prefix string `yaml:"prefix" validate:"required"`
	Code   string `yaml:"code" validate:"required,uppercase"`
}

// CategoryRule scopes a nature rule to a category and optionally to a
// list of its subcategories. An empty subcategory list means the rule
// covers the whole category.
type CategoryRule struct {
	Category      string   `yaml:"category" validate:"required"`
	Subcategories []string `yaml:"subcategories,omitempty"`
}

// NatureTables holds the deterministic expense-nature rules and the
// recurrence-heuristic candidate list.
type NatureTables struct {
	Eventual   []string       `yaml:"eventual"`
	Fixed      []CategoryRule `yaml:"fixed" validate:"dive"`
	Variable   []string       `yaml:"variable"`
	Heuristics []CategoryRule `yaml:"heuristics" validate:"dive"`
}

// Tables is the full reference data set.
type Tables struct {
	Version   string       `yaml:"version" validate:"required"`
	Prefixes  []PrefixRule `yaml:"prefixes" validate:"required,min=1,dive"`
	Stopwords []string     `yaml:"stopwords" validate:"required,min=1"`
	Gateways  []string     `yaml:"gateways" validate:"required,min=1"`
	States    []string     `yaml:"states" validate:"required,min=1"`
	Cities    []string     `yaml:"cities" validate:"required,min=1"`
	Merchants []string     `yaml:"merchants" validate:"required,min=1"`
	Nature    NatureTables `yaml:"nature"`
}

var validate = validator.New()

// Validate checks structural integrity of the table set.
func (t *Tables) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid reference tables: %w", err)
	}
	return nil
}

// Load reads a table set from a YAML file and validates it.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tables file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
