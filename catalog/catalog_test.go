package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/slashpad/menu"
)

func TestParse_TOML(t *testing.T) {
	data := []byte(`
[[options]]
id = "sig"
label = "Signature"
insert = "-- \nJane"

[[options]]
id = "todo"
`)
	opts, err := Parse(data, FormatTOML)
	require.NoError(t, err)
	require.Len(t, opts, 2)

	assert.Equal(t, menu.Option{ID: "sig", Label: "Signature", InsertText: "-- \nJane"}, opts[0])
	assert.Equal(t, menu.Option{ID: "todo", Label: "todo", InsertText: "todo"}, opts[1])
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
options:
  - id: date
    label: Today's date
    insert: "2026-10-16"
  - id: hr
    insert: "\n---\n"
`)
	opts, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	require.Len(t, opts, 2)

	assert.Equal(t, "Today's date", opts[0].Label)
	assert.Equal(t, "2026-10-16", opts[0].InsertText)
	assert.Equal(t, "hr", opts[1].Label)
	assert.Equal(t, "\n---\n", opts[1].InsertText)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		is     error
	}{
		{name: "empty toml", data: ``, format: FormatTOML, is: menu.ErrEmptyOptionSet},
		{name: "empty yaml list", data: "options: []\n", format: FormatYAML, is: menu.ErrEmptyOptionSet},
		{name: "unknown format", data: `x`, format: Format("ini"), is: ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.ErrorIs(t, err, tt.is)
		})
	}

	_, err := Parse([]byte("[[options]]\nlabel = \"no id\"\n"), FormatTOML)
	require.ErrorContains(t, err, "missing id")

	_, err = Parse([]byte("options:\n  - id: a\n  - id: a\n"), FormatYAML)
	require.ErrorContains(t, err, "duplicate id")

	_, err = Parse([]byte("options: [unclosed"), FormatYAML)
	require.ErrorContains(t, err, "decode yaml")
}

func TestLoad_PicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "options.toml")
	yamlPath := filepath.Join(dir, "options.YML")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[[options]]\nid = \"a\"\n"), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("options:\n  - id: b\n"), 0o644))

	opts, err := Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "a", opts[0].ID)

	opts, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "b", opts[0].ID)

	_, err = Load(filepath.Join(dir, "options.json"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.ErrorContains(t, err, "read catalog")
}

func TestDefaults(t *testing.T) {
	opts := Defaults()
	require.Len(t, opts, 3)
	require.NoError(t, menu.ValidateOptions(opts))
	for _, opt := range opts {
		assert.Equal(t, opt.ID, opt.InsertText)
	}
}
