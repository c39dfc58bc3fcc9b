package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/rowexpand/internal/logging"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableYAML = `
title: Demo
options:
  expand_all: true
columns:
  - key: name
rows:
  - key: a
    name: alpha
    children:
      - key: a1
        name: alpha-1
  - key: b
    name: beta
`

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveFile(t *testing.T) {
	t.Run("Explicit path wins", func(t *testing.T) {
		got, err := ResolveFile("custom.yaml", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "custom.yaml", got)
	})

	t.Run("Prefers yaml over json", func(t *testing.T) {
		dir := t.TempDir()
		writeTable(t, dir, "table.json", "{}")
		yamlPath := writeTable(t, dir, "table.yaml", tableYAML)

		got, err := ResolveFile("", dir)
		require.NoError(t, err)
		assert.Equal(t, yamlPath, got)
	})

	t.Run("Fails without candidates", func(t *testing.T) {
		_, err := ResolveFile("", t.TempDir())
		assert.Error(t, err)
	})
}

func TestLoadTable(t *testing.T) {
	path := writeTable(t, t.TempDir(), "table.yaml", tableYAML)

	table, def, err := LoadTable(path, logging.NewNop())
	require.NoError(t, err)
	defer table.Close()

	assert.Equal(t, "Demo", def.Title)
	assert.Equal(t, domain.KeySet{"a"}, table.ExpandedRowKeys())

	_, _, err = LoadTable(filepath.Join(t.TempDir(), "missing.yaml"), logging.NewNop())
	assert.Error(t, err)
}

func TestReload_KeepsExpandedRows(t *testing.T) {
	path := writeTable(t, t.TempDir(), "table.yaml", `
columns: [{key: name}]
rows:
  - {key: a, children: [{key: a1}]}
  - {key: b, children: [{key: b1}]}
`)
	table, _, err := LoadTable(path, logging.NewNop())
	require.NoError(t, err)
	defer table.Close()

	_, err = table.ExpandKey("b", nil)
	require.NoError(t, err)

	next, err := reload(path, table, logging.NewNop())
	require.NoError(t, err)
	defer next.Close()
	assert.Equal(t, domain.KeySet{"b"}, next.ExpandedRowKeys())
}

func TestReload_KeepsCollapsedRowsUnderExpandAll(t *testing.T) {
	path := writeTable(t, t.TempDir(), "table.yaml", `
options: {expand_all: true}
columns: [{key: name}]
rows:
  - {key: 1, children: [{key: 11}]}
`)
	table, _, err := LoadTable(path, logging.NewNop())
	require.NoError(t, err)
	defer table.Close()
	require.Equal(t, domain.KeySet{"1"}, table.ExpandedRowKeys())

	_, err = table.CollapseKey("1", nil)
	require.NoError(t, err)

	next, err := reload(path, table, logging.NewNop())
	require.NoError(t, err)
	defer next.Close()
	assert.Equal(t, domain.KeySet{}, next.ExpandedRowKeys())
	assert.False(t, next.Config().DefaultExpandAllRows)
}

func TestCreateLogger(t *testing.T) {
	logger, err := createLogger("")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = createLogger("debug")
	assert.NoError(t, err)

	_, err = createLogger("loud")
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	path := writeTable(t, t.TempDir(), "table.yaml", tableYAML)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	go Watch(ctx, path, 10*time.Millisecond, logging.NewNop(), func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(tableYAML+"\n# edited\n"), 0644))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("change not detected")
	}
}
