package statuses

import (
	"embed"
	"fmt"

	"projectboard/internal/domain/models"

	"gopkg.in/yaml.v3"
)

//go:embed config/statuses.yaml
var configFiles embed.FS

// Catalog holds the presentation of every workflow stage. It is read-only
// after construction.
type Catalog struct {
	ordered []Definition
	byValue map[models.Status]Definition
}

// NewCatalog loads the embedded status catalog
func NewCatalog() (*Catalog, error) {
	data, err := configFiles.ReadFile("config/statuses.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read status catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML. Every known status must be described exactly once.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status catalog: %w", err)
	}

	c := &Catalog{
		ordered: make([]Definition, 0, len(file.Statuses)),
		byValue: make(map[models.Status]Definition, len(file.Statuses)),
	}
	for _, def := range file.Statuses {
		if !def.Value.IsValid() {
			return nil, fmt.Errorf("unknown status %q in catalog", def.Value)
		}
		if _, dup := c.byValue[def.Value]; dup {
			return nil, fmt.Errorf("status %q listed twice", def.Value)
		}
		if def.Label == "" {
			def.Label = string(def.Value)
		}
		c.ordered = append(c.ordered, def)
		c.byValue[def.Value] = def
	}

	for _, status := range models.AllStatuses {
		if _, ok := c.byValue[status]; !ok {
			return nil, fmt.Errorf("status %q missing from catalog", status)
		}
	}

	return c, nil
}

// All returns the definitions in display order
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Lookup returns the definition of a status
func (c *Catalog) Lookup(status models.Status) (Definition, bool) {
	def, ok := c.byValue[status]
	return def, ok
}
