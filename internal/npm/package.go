// Package npm reads the slice of a package manifest this tool cares about:
// where the compiler's type declarations live.
package npm

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PackageJSON holds the recognized fields of a package.json.
type PackageJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Main    string `json:"main"`
	Module  string `json:"module"`
	Types   string `json:"types"`
	Typings string `json:"typings"`
}

// ReadPackageJSON loads the package.json found in dir. The legacy "typings"
// key is honored when "types" is absent, matching npm's own resolution.
func ReadPackageJSON(dir string) (*PackageJSON, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if pkg.Types == "" {
		pkg.Types = pkg.Typings
	}
	return &pkg, nil
}

// TypesPath resolves the declarations entry against the package directory.
func (p *PackageJSON) TypesPath(dir string) (string, error) {
	if p.Types == "" {
		return "", errors.New("package.json has no types entry")
	}
	return filepath.Join(dir, p.Types), nil
}
