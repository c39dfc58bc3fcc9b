package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/internal/logging"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionTable(t *testing.T, opts ...rowexpand.Option) *rowexpand.Table {
	t.Helper()
	rows := []domain.Row{
		{"key": "a", "name": "alpha", "children": []domain.Row{{"key": "a1", "name": "alpha-1"}}},
		{"key": "b", "name": "beta"},
	}
	table, err := rowexpand.New(rows, []domain.Column{{Key: "name"}}, opts...)
	require.NoError(t, err)
	t.Cleanup(table.Close)
	return table
}

func TestSession_Run(t *testing.T) {
	table := newSessionTable(t)
	in := strings.NewReader("t a\nkeys\nc a\nq\nt b\n")
	var out bytes.Buffer

	s := NewSession(table, in, &out, logging.NewNop())
	require.NoError(t, s.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "alpha-1")
	assert.Contains(t, output, ">>> expanded: a")
	assert.Empty(t, table.ExpandedRowKeys(), "commands after quit must not run")
}

func TestSession_RunUntilEOF(t *testing.T) {
	s := NewSession(newSessionTable(t), strings.NewReader("e a\n"), &bytes.Buffer{}, logging.NewNop())
	err := s.Run(context.Background())
	assert.NoError(t, handleExecutionError(err))
	assert.Equal(t, domain.KeySet{"a"}, s.Table().ExpandedRowKeys())
}

func TestSession_Exec(t *testing.T) {
	table := newSessionTable(t)
	var out bytes.Buffer
	s := NewSession(table, nil, &out, logging.NewNop())

	require.NoError(t, s.Exec("expand a"))
	require.NoError(t, s.Exec("e a"))
	assert.Equal(t, domain.KeySet{"a"}, table.ExpandedRowKeys())

	require.NoError(t, s.Exec("set a,b"))
	assert.Equal(t, domain.KeySet{"a", "b"}, table.ExpandedRowKeys())
	assert.True(t, table.Controlled())

	out.Reset()
	require.NoError(t, s.Exec("toggle a"))
	assert.Contains(t, out.String(), "controlled")
	assert.Equal(t, domain.KeySet{"a", "b"}, table.ExpandedRowKeys())

	require.NoError(t, s.Exec("side left"))
	require.NoError(t, s.Exec("help"))

	assert.ErrorIs(t, s.Exec("quit"), errQuit)
	assert.ErrorIs(t, s.Exec("t missing"), domain.ErrRowNotFound)
	assert.Error(t, s.Exec("t"))
	assert.Error(t, s.Exec("side up"))
	assert.Error(t, s.Exec("dance"))
}

func TestSession_Replace(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(newSessionTable(t), nil, &out, logging.NewNop())

	next := newSessionTable(t, rowexpand.WithDefaultExpandedRowKeys("a"))
	require.NoError(t, s.Replace(next))
	assert.Same(t, next, s.Table())
	assert.Contains(t, out.String(), "alpha-1")
}

func TestSession_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession(newSessionTable(t), strings.NewReader("t a\n"), &bytes.Buffer{}, logging.NewNop())
	err := s.Run(ctx)
	assert.True(t, isInterrupted(err))
	assert.NoError(t, handleExecutionError(err))
}

func TestSession_ExecSanitizes(t *testing.T) {
	table := newSessionTable(t)
	s := NewSession(table, nil, &bytes.Buffer{}, logging.NewNop())

	require.NoError(t, s.Exec("e \x1ba"))
	assert.Equal(t, domain.KeySet{"a"}, table.ExpandedRowKeys())

	assert.ErrorIs(t, s.Exec("e \xff"), ErrInvalidUTF8)
}
