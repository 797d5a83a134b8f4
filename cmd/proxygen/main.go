// cmd/proxygen generates Angular directive proxies for compiled web
// components.
//
// It reads the component metadata manifest produced by the component
// compiler, resolves type-declaration import paths through the package
// manifest, and writes one wrapper class per component to each configured
// output file. The wrappers forward property access and method calls to the
// underlying custom element and expose its events as observables.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("proxygen: ")

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "proxygen",
		Short: "Generate Angular directive proxies for compiled web components",
		Long: `proxygen wraps a web-component compiler's output for idiomatic use inside
Angular. Each compiled custom element gets a generated proxy class that
forwards inputs and method calls to the element and surfaces its events
as observable outputs.`,
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}
