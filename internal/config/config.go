// Package config describes proxygen's inputs and output targets, and loads
// them from a CUE config file.
package config

import "errors"

// Config is one generation run: where the component manifest and package
// manifest live, plus the output targets to generate.
type Config struct {
	Components string
	PackageDir string
	Targets    []OutputTarget
}

// OutputTarget mirrors the output-target options of the component compiler's
// Angular integration.
type OutputTarget struct {
	// DirectivesProxyFile is where the generated proxies module is written.
	DirectivesProxyFile string
	// DirectivesUtilsFile, when set, is imported by the proxies module;
	// when empty the utilities are embedded inline instead.
	DirectivesUtilsFile string
	// ComponentCorePackage overrides the computed relative specifier for
	// the components type import.
	ComponentCorePackage string
	// RootDir is the source-root prefix replaced with the types directory
	// when resolving per-component declaration files.
	RootDir string
}

func (t OutputTarget) Validate() error {
	if t.DirectivesProxyFile == "" {
		return errors.New("output target missing directivesProxyFile")
	}
	return nil
}
