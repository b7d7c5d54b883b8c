package formschema

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_schema.yaml
var defaultSchemaYAML []byte

// Field is one wizard question. Repeater fields nest their row fields;
// conditional fields carry the parent answer that reveals them.
type Field struct {
	Name     string   `yaml:"name" json:"name"`
	Label    string   `yaml:"label" json:"label"`
	Type     string   `yaml:"type" json:"type"`
	Required bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Options  []string `yaml:"options,omitempty" json:"options,omitempty"`
	When     string   `yaml:"when,omitempty" json:"when,omitempty"`
	Fields   []Field  `yaml:"fields,omitempty" json:"fields,omitempty"`
}

type Step struct {
	Name   string  `yaml:"name" json:"name"`
	Title  string  `yaml:"title" json:"title"`
	Fields []Field `yaml:"fields" json:"fields"`
}

type Schema struct {
	Steps []Step `yaml:"steps" json:"steps"`
}

var knownFieldTypes = map[string]bool{
	"text":     true,
	"textarea": true,
	"number":   true,
	"currency": true,
	"date":     true,
	"select":   true,
	"yesno":    true,
	"repeater": true,
}

// Load reads the wizard schema from path, or the embedded default when path
// is empty.
func Load(path string) (*Schema, error) {
	data := defaultSchemaYAML
	if strings.TrimSpace(path) != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read form schema: %w", err)
		}
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse form schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks structural integrity: unique field names within a step and
// only known field types.
func (s *Schema) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("form schema has no steps")
	}
	for _, step := range s.Steps {
		seen := map[string]bool{}
		if err := validateFields(step.Name, step.Fields, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateFields(step string, fields []Field, seen map[string]bool) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("step %q: field with empty name", step)
		}
		if seen[f.Name] {
			return fmt.Errorf("step %q: duplicate field %q", step, f.Name)
		}
		seen[f.Name] = true
		if !knownFieldTypes[f.Type] {
			return fmt.Errorf("step %q: field %q has unknown type %q", step, f.Name, f.Type)
		}
		if f.Type == "repeater" && len(f.Fields) == 0 {
			return fmt.Errorf("step %q: repeater %q has no row fields", step, f.Name)
		}
		if len(f.Fields) > 0 {
			if err := validateFields(step, f.Fields, map[string]bool{}); err != nil {
				return err
			}
		}
	}
	return nil
}
