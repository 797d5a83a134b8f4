package angular

import (
	"path/filepath"
	"strings"
)

// RelativeImport computes the module specifier for an import from the file
// being generated to another file in the output tree. Module specifiers use
// forward slashes regardless of platform and carry no extension; a specifier
// that does not climb out of the importing file's directory gets an explicit
// ./ prefix.
func RelativeImport(fromPath, toPath, ext string) string {
	rel, err := filepath.Rel(filepath.Dir(fromPath), filepath.Dir(toPath))
	if err != nil {
		rel = "."
	}
	base := strings.TrimSuffix(filepath.Base(toPath), ext)
	spec := filepath.ToSlash(rel) + "/" + base
	if !strings.HasPrefix(spec, ".") {
		spec = "./" + spec
	}
	return spec
}
