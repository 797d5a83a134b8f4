package wcmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestFixture = `{
  "components": [
    {
      "tag": "my-checkbox",
      "componentClassName": "Checkbox",
      "sourceFilePath": "src/components/my-checkbox/my-checkbox.tsx",
      "properties": [
        {"name": "checked", "internal": false},
        {"name": "bufferState", "internal": true}
      ],
      "virtualProperties": [
        {"name": "indeterminate"}
      ],
      "events": [
        {
          "event": "checkedChange",
          "method": "onChange",
          "internal": false,
          "docs": {
            "text": "Emitted when checked changes.",
            "tags": [{"name": "since", "text": "1.2"}]
          }
        }
      ],
      "methods": [
        {"name": "toggle", "internal": false}
      ]
    },
    {
      "tag": "my-badge",
      "componentClassName": "Badge",
      "sourceFilePath": "src/components/my-badge/my-badge.tsx"
    }
  ]
}`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "components.json")
	require.NoError(t, os.WriteFile(path, []byte(manifestFixture), 0644))

	components, err := Load(path)
	require.NoError(t, err)
	require.Len(t, components, 2)

	checkbox := components[0]
	assert.Equal(t, "my-checkbox", checkbox.Tag)
	assert.Equal(t, "Checkbox", checkbox.ClassName)
	assert.Equal(t, "src/components/my-checkbox/my-checkbox.tsx", checkbox.SourceFilePath)
	require.Len(t, checkbox.Properties, 2)
	assert.True(t, checkbox.Properties[1].Internal)
	require.Len(t, checkbox.VirtualProperties, 1)
	assert.Equal(t, "indeterminate", checkbox.VirtualProperties[0].Name)
	require.Len(t, checkbox.Events, 1)
	assert.Equal(t, "checkedChange", checkbox.Events[0].Name)
	assert.Equal(t, "onChange", checkbox.Events[0].Method)
	assert.Equal(t, "Emitted when checked changes.", checkbox.Events[0].Docs.Text)
	require.Len(t, checkbox.Events[0].Docs.Tags, 1)
	assert.Equal(t, "since", checkbox.Events[0].Docs.Tags[0].Name)
	require.Len(t, checkbox.Methods, 1)

	// manifest order is preserved
	assert.Equal(t, "my-badge", components[1].Tag)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "components.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "components.json")
}
