package config

import (
	"os"
	"path/filepath"
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configFixture = `
components: "dist/components.json"
packageDir: "packages/core"
targets: [
	{
		directivesProxyFile: "projects/library/src/directives/proxies.ts"
		directivesUtilsFile: "projects/library/src/directives/angular-component-lib/utils.ts"
		rootDir:             "src"
	},
	{
		directivesProxyFile:  "projects/standalone/src/proxies.ts"
		componentCorePackage: "@acme/core"
	},
]
`

func TestDecode(t *testing.T) {
	val := cuecontext.New().CompileString(configFixture)
	require.NoError(t, val.Err())

	cfg, err := Decode(val)
	require.NoError(t, err)

	assert.Equal(t, "dist/components.json", cfg.Components)
	assert.Equal(t, "packages/core", cfg.PackageDir)
	require.Len(t, cfg.Targets, 2)

	first := cfg.Targets[0]
	assert.Equal(t, "projects/library/src/directives/proxies.ts", first.DirectivesProxyFile)
	assert.Equal(t, "projects/library/src/directives/angular-component-lib/utils.ts", first.DirectivesUtilsFile)
	assert.Equal(t, "src", first.RootDir)
	assert.Empty(t, first.ComponentCorePackage)

	second := cfg.Targets[1]
	assert.Equal(t, "@acme/core", second.ComponentCorePackage)
	assert.Empty(t, second.DirectivesUtilsFile)
}

func TestDecodeDefaultsPackageDir(t *testing.T) {
	val := cuecontext.New().CompileString(`components: "c.json"`)
	require.NoError(t, val.Err())

	cfg, err := Decode(val)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.PackageDir)
	assert.Empty(t, cfg.Targets)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxygen.cue")
	require.NoError(t, os.WriteFile(path, []byte(configFixture), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dist/components.json", cfg.Components)
	require.Len(t, cfg.Targets, 2)
}

func TestLoadRejectsEmptyTargets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxygen.cue")
	require.NoError(t, os.WriteFile(path, []byte(`components: "c.json"`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no targets")
}

func TestValidate(t *testing.T) {
	assert.Error(t, OutputTarget{}.Validate())
	assert.NoError(t, OutputTarget{DirectivesProxyFile: "out/proxies.ts"}.Validate())
}
