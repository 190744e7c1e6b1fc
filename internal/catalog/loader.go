// Package catalog loads break-action definitions from configuration files,
// letting deployments replace or extend the built-in actions.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chillmcp/chillmcp/pkg/domain"
)

// file is the on-disk shape of a catalog.
type file struct {
	Actions []domain.Action `yaml:"actions" json:"actions"`
}

// Load reads a catalog file (YAML or JSON) and validates it. YAML is the
// default; files ending in .json are parsed as JSON.
func Load(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var f file
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	}

	cat := domain.Catalog(f.Actions)
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}
