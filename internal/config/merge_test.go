package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datagrid/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 10, target.Table.PageSize, "table section must be untouched")
	assert.Equal(t, "info", target.Logging.Level, "logging section must be untouched")
}

func TestShallowMergeYAML_PartialSectionKeepsOtherFields(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
table:
  page_size: 25
  locale: de
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 25, target.Table.PageSize)
	assert.Equal(t, "de", target.Table.Locale)
	assert.Equal(t, config.SizeMiddle, target.Table.Size)
	assert.Equal(t, "id", target.Table.RowKey)
}

func TestShallowMergeYAML_AllSections(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
table:
  size: small
  bordered: false
  empty_message: nothing here
output:
  default_format: html
logging:
  level: debug
  format: json
  file: /tmp/datagrid.log
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, config.SizeSmall, target.Table.Size)
	assert.False(t, target.Table.Bordered)
	assert.Equal(t, "nothing here", target.Table.EmptyMessage)
	assert.Equal(t, config.FormatHTML, target.Output.DefaultFormat)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Equal(t, "/tmp/datagrid.log", target.Logging.File)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
output:
  default_format: yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "yaml", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, "# only a comment\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, config.Default(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("NilTarget", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "whatever.yaml"))
	})

	t.Run("MissingFile", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading overlay file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Default(), writeOverlay(t, "table: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing overlay YAML")
	})

	t.Run("WrongSectionType", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.Default(), writeOverlay(t, "table:\n  page_size: lots\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `applying overlay section "table"`)
	})
}
