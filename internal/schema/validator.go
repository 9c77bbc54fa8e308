// Package schema validates catalog documents against embedded CUE schemas
// before they reach the engine, so a typo in an overlay file surfaces as a
// validation error instead of a silently wrong recommendation.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError describes one schema violation in a catalog document.
type ValidationError struct {
	File     string
	Message  string
	Severity string // error, warning
}

// Validator handles CUE validation of catalog documents.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a Validator with no schemas loaded.
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles all embedded .cue schema files.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}
		name := entry.Name()[:len(entry.Name())-4]
		v.schemas[name] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}
	return nil
}

// ValidateCatalogYAML validates a raw catalog YAML document (a file that may
// contain distros, desktopEnvironments, and/or games sections).
func (v *Validator) ValidateCatalogYAML(path string, raw []byte) ([]ValidationError, error) {
	var data map[string]any
	if err := yamlv3.Unmarshal(raw, &data); err != nil {
		return []ValidationError{{
			File:     path,
			Message:  fmt.Sprintf("invalid YAML: %v", err),
			Severity: "error",
		}}, nil
	}
	return v.validateAgainstSchema("catalog", path, data)
}

func (v *Validator) validateAgainstSchema(schemaName, path string, data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas[schemaName]
	if !ok {
		// No schema compiled; nothing to check against.
		return nil, nil
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath("#Catalog"))
	if !def.Exists() {
		return nil, nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(path, err), nil
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(path, err), nil
	}
	return nil, nil
}

func extractErrors(path string, err error) []ValidationError {
	return []ValidationError{{
		File:     path,
		Message:  fmt.Sprintf("schema validation failed: %v", err),
		Severity: "error",
	}}
}
