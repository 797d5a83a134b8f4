package config

import (
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// Load reads a proxygen CUE config file.
func Load(path string) (*Config, error) {
	dir := filepath.Dir(path)
	insts := load.Instances([]string{"./" + filepath.Base(path)}, &load.Config{Dir: dir})
	if len(insts) == 0 {
		return nil, fmt.Errorf("no CUE instances found in %s", path)
	}
	if insts[0].Err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, insts[0].Err)
	}

	ctx := cuecontext.New()
	val := ctx.BuildInstance(insts[0])
	if val.Err() != nil {
		return nil, fmt.Errorf("building %s: %w", path, val.Err())
	}

	cfg, err := Decode(val)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Components == "" {
		return nil, fmt.Errorf("%s does not set components", path)
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("%s declares no targets", path)
	}
	return cfg, nil
}

// Decode reads a Config out of a CUE value. Split from Load so tests and
// callers with values from other sources can reuse it.
func Decode(val cue.Value) (*Config, error) {
	cfg := &Config{PackageDir: "."}

	if v := val.LookupPath(cue.ParsePath("components")); v.Err() == nil {
		cfg.Components, _ = v.String()
	}
	if v := val.LookupPath(cue.ParsePath("packageDir")); v.Err() == nil {
		cfg.PackageDir, _ = v.String()
	}

	tv := val.LookupPath(cue.ParsePath("targets"))
	if tv.Exists() {
		iter, err := tv.List()
		if err != nil {
			return nil, fmt.Errorf("targets must be a list: %w", err)
		}
		for iter.Next() {
			cfg.Targets = append(cfg.Targets, decodeTarget(iter.Value()))
		}
	}
	return cfg, nil
}

func decodeTarget(v cue.Value) OutputTarget {
	var t OutputTarget
	if f := v.LookupPath(cue.ParsePath("directivesProxyFile")); f.Err() == nil {
		t.DirectivesProxyFile, _ = f.String()
	}
	if f := v.LookupPath(cue.ParsePath("directivesUtilsFile")); f.Err() == nil {
		t.DirectivesUtilsFile, _ = f.String()
	}
	if f := v.LookupPath(cue.ParsePath("componentCorePackage")); f.Err() == nil {
		t.ComponentCorePackage, _ = f.String()
	}
	if f := v.LookupPath(cue.ParsePath("rootDir")); f.Err() == nil {
		t.RootDir, _ = f.String()
	}
	return t
}
