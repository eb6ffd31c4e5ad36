package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed data/courses.yaml
var defaultCatalog []byte

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

type document struct {
	Courses []Course `yaml:"courses"`
}

// Default parses the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog, checks it against the catalog schema and
// builds it with New. Malformed durations fail here, never at render time.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	cat, err := New(doc.Courses)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	slog.Info("catalog loaded", "courses", cat.Len(), "fingerprint", cat.Fingerprint()[:12])
	return cat, nil
}

func validate(raw any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling catalog schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return &SchemaError{Violations: violations}
}
