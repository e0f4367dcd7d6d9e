package shellscripter

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"skiddie/internal/generate"
)

const (
	CatalogKind            = "command_catalog"
	SupportedSchemaVersion = 1
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the set of commands the game asks players to type. Pools hold
// shared value lists; input_files and output_files also feed the generator's
// extra arguments and redirect targets.
type Catalog struct {
	Kind          string              `yaml:"kind"`
	SchemaVersion int                 `yaml:"schema_version"`
	Pools         map[string][]string `yaml:"pools"`
	Commands      []generate.Template `yaml:"commands"`
}

func (c Catalog) Validate() error {
	if c.Kind != CatalogKind {
		return fmt.Errorf("kind must be %q", CatalogKind)
	}
	if c.SchemaVersion != SupportedSchemaVersion {
		return fmt.Errorf("unsupported schema_version %d", c.SchemaVersion)
	}
	if len(c.Commands) == 0 {
		return fmt.Errorf("commands must not be empty")
	}
	seen := make(map[string]bool, len(c.Commands))
	for i, cmd := range c.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("commands[%d]: name is required", i)
		}
		if seen[cmd.Name] {
			return fmt.Errorf("duplicate command %q", cmd.Name)
		}
		seen[cmd.Name] = true
	}
	return nil
}

// LoadCatalog decodes and validates a catalog document.
func LoadCatalog(b []byte) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("decode command catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("validate command catalog: %w", err)
	}
	return c, nil
}

// DefaultCatalog is the bundled catalog.
func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(catalogYAML)
}
