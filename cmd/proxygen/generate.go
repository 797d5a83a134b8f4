package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matthewbaird/proxygen/internal/angular"
	"github.com/matthewbaird/proxygen/internal/config"
	"github.com/matthewbaird/proxygen/internal/npm"
	"github.com/matthewbaird/proxygen/internal/wcmeta"
)

type generateOptions struct {
	configFile  string
	components  string
	packageDir  string
	proxyFile   string
	utilsFile   string
	corePackage string
	rootDir     string
}

func newGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the proxies module for every configured output target",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "CUE config file declaring output targets")
	flags.StringVar(&opts.components, "components", "", "component metadata manifest (components.json)")
	flags.StringVar(&opts.packageDir, "package", ".", "directory containing the package.json to resolve types from")
	flags.StringVar(&opts.proxyFile, "out", "", "output path for the generated proxies module")
	flags.StringVar(&opts.utilsFile, "utils-file", "", "shared utilities module to import instead of embedding one")
	flags.StringVar(&opts.corePackage, "core-package", "", "package specifier overriding the computed components type import")
	flags.StringVar(&opts.rootDir, "root", "", "source root replaced with the types directory when resolving declarations")

	return cmd
}

func runGenerate(opts *generateOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	pkg, err := npm.ReadPackageJSON(cfg.PackageDir)
	if err != nil {
		return err
	}
	typesPath, err := pkg.TypesPath(cfg.PackageDir)
	if err != nil {
		return err
	}

	components, err := wcmeta.Load(cfg.Components)
	if err != nil {
		return err
	}
	log.Printf("loaded %d component descriptors from %s", len(components), cfg.Components)

	for _, target := range cfg.Targets {
		if err := target.Validate(); err != nil {
			return err
		}
		out := angular.GenerateProxies(components, target, typesPath)
		if err := writeFile(target.DirectivesProxyFile, out); err != nil {
			return err
		}
		log.Printf("wrote %s", target.DirectivesProxyFile)
	}
	return nil
}

// resolveConfig builds the run config from the CUE file when given, and from
// single-target flags otherwise.
func resolveConfig(opts *generateOptions) (*config.Config, error) {
	if opts.configFile != "" {
		return config.Load(opts.configFile)
	}
	if opts.components == "" || opts.proxyFile == "" {
		return nil, errors.New("either --config or both --components and --out are required")
	}
	return &config.Config{
		Components: opts.components,
		PackageDir: opts.packageDir,
		Targets: []config.OutputTarget{{
			DirectivesProxyFile:  opts.proxyFile,
			DirectivesUtilsFile:  opts.utilsFile,
			ComponentCorePackage: opts.corePackage,
			RootDir:              opts.rootDir,
		}},
	}, nil
}

func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
