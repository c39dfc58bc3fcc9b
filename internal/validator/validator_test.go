package validator

import (
	"errors"
	"testing"

	"github.com/aretw0/rowexpand/pkg/adapters/file"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *file.Definition {
	t.Helper()
	def, err := file.Parse([]byte(src), "yaml")
	require.NoError(t, err)
	return def
}

func TestValidateDefinition(t *testing.T) {
	t.Run("Valid table", func(t *testing.T) {
		def := parse(t, `
options:
  default_expanded_row_keys: [a]
  expand_icon_column_index: 1
columns: [{key: name}, {key: owner}]
rows:
  - key: a
    children:
      - key: a1
        children: []
  - name: positional
  - name: positional too
`)
		assert.NoError(t, ValidateDefinition(def))
	})

	t.Run("Reports every problem", func(t *testing.T) {
		def := parse(t, `
options:
  expanded_row_keys: [ghost]
  expand_icon_column_index: 3
columns: [{key: name}, {key: name}]
rows:
  - key: a
    children: nope
  - key: a
`)
		err := ValidateDefinition(def)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidTable))

		msg := err.Error()
		assert.Contains(t, msg, "duplicate column key 'name'")
		assert.Contains(t, msg, "expand_icon_column_index 3 out of range")
		assert.Contains(t, msg, "rows[0]: 'children' is not a list of rows")
		assert.Contains(t, msg, "rows[1]: duplicate row key 'a'")
		assert.Contains(t, msg, "expanded_row_keys: no row with key 'ghost'")
	})

	t.Run("Positional keys name rows", func(t *testing.T) {
		def := parse(t, `
options:
  default_expanded_row_keys: ["0"]
columns: [{key: name}]
rows:
  - name: first
    children:
      - name: nested
  - name: second
`)
		assert.NoError(t, ValidateDefinition(def))

		def = parse(t, `
options:
  default_expanded_row_keys: ["5"]
columns: [{key: name}]
rows:
  - name: only
`)
		err := ValidateDefinition(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default_expanded_row_keys: no row with key '5'")
	})

	t.Run("Custom key and children fields", func(t *testing.T) {
		def := parse(t, `
options:
  row_key: id
  children_column_name: items
  default_expanded_row_keys: ["2"]
columns: [{key: name}]
rows:
  - id: 1
    items:
      - id: 2
`)
		assert.NoError(t, ValidateDefinition(def))
	})
}
