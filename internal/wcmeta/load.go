package wcmeta

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads a components manifest file. Component order in the manifest is
// preserved; generated output follows it.
func Load(path string) ([]Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading component manifest: %w", err)
	}

	var manifest struct {
		Components []Component `json:"components"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return manifest.Components, nil
}
