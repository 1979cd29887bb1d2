package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var catalogSchema string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded catalog schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(catalogSchema))
		if err != nil {
			schemaErr = fmt.Errorf("failed to parse embedded catalog schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("catalog.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("failed to add catalog schema resource: %w", err)
			return
		}

		schema, schemaErr = compiler.Compile("catalog.schema.json")
	})
	return schema, schemaErr
}

// Parse validates raw YAML catalog data against the catalog schema and returns
// the parsed catalog.
func Parse(data []byte) (*Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("catalog data cannot be empty")
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	// Decode to a generic document first so the schema sees the raw shape.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return &c, nil
}

// Load reads and validates a catalog file. An empty path returns the embedded
// default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}

	return c, nil
}
