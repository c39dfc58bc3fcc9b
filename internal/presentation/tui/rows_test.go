package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, opts ...rowexpand.Option) *rowexpand.Table {
	t.Helper()
	rows := []domain.Row{
		{"key": "a", "name": "alpha", "owner": "ops", "children": []domain.Row{{"key": "a1", "name": "alpha-1", "owner": "dev"}}},
		{"key": "b", "name": "beta", "owner": "qa"},
	}
	cols := []domain.Column{{Key: "name"}, {Key: "owner"}}
	table, err := rowexpand.New(rows, cols, opts...)
	require.NoError(t, err)
	t.Cleanup(table.Close)
	return table
}

func render(t *testing.T, table *rowexpand.Table, opts ...Option) []string {
	t.Helper()
	var buf bytes.Buffer
	w := NewRowWriter(&buf, append([]Option{WithCellWidth(12)}, opts...)...)
	require.NoError(t, table.Render(domain.FixedNone, w))
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRowWriter_TreeRows(t *testing.T) {
	table := newTable(t)

	lines := render(t, table)
	require.Len(t, lines, 2)
	assert.Equal(t, "▶ alpha      ops", lines[0])
	assert.Equal(t, "  beta       qa", lines[1])

	_, err := table.ExpandKey("a", nil)
	require.NoError(t, err)

	lines = render(t, table)
	require.Len(t, lines, 3)
	assert.Equal(t, "▼ alpha      ops", lines[0])
	assert.Equal(t, "    alpha-1  dev", lines[1])
}

func TestRowWriter_IconAsCell(t *testing.T) {
	table := newTable(t, rowexpand.WithExpandIconAsCell(true))

	lines := render(t, table)
	assert.Equal(t, "▶ alpha        ops", lines[0])
	assert.Equal(t, "  beta         qa", lines[1])
}

func TestRowWriter_DetailRow(t *testing.T) {
	table := newTable(t,
		rowexpand.WithDefaultExpandedRowKeys("b"),
		rowexpand.WithExpandedRowRender(func(record domain.Row, index, indent int) any {
			return "line one\nline two"
		}),
	)

	lines := render(t, table)
	require.Len(t, lines, 4)
	assert.Equal(t, "  line one", lines[2])
	assert.Equal(t, "  line two", lines[3])

	state := table.Store().GetState()
	assert.Equal(t, 2.0, state.ExpandedRowsHeight["b-extra-row"])
}

func TestRowWriter_MarkdownDetail(t *testing.T) {
	table := newTable(t,
		rowexpand.WithDefaultExpandedRowKeys("b"),
		rowexpand.WithExpandedRowRender(func(record domain.Row, index, indent int) any {
			return "**bold**"
		}),
	)

	called := false
	lines := render(t, table, WithMarkdown(func(s string) (string, error) {
		called = true
		return "\nBOLD\n", nil
	}))
	assert.True(t, called)
	assert.Equal(t, "  BOLD", lines[len(lines)-1])
}

func TestRowWriter_PadsToStoredHeight(t *testing.T) {
	var buf bytes.Buffer
	w := NewRowWriter(&buf)

	err := w.RenderRow(domain.RowView{
		Key:     "x-extra-row",
		Visible: true,
		Detail:  true,
		Indent:  1,
		Height:  3,
		Cells:   []domain.Cell{{Key: domain.ExtraRowCellKey, Content: domain.NonBreakingSpace}},
	})
	require.NoError(t, err)
	assert.Equal(t, "\n\n\n", buf.String())
}

func TestRowWriter_SkipsHiddenRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewRowWriter(&buf)
	require.NoError(t, w.RenderRow(domain.RowView{Key: "x", Cells: []domain.Cell{{Key: "name", Content: "x"}}}))
	assert.Empty(t, buf.String())
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 4))
	assert.Equal(t, "abc…", pad("abcdef", 4))
	assert.Equal(t, "▶", pad("▶x", 1))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii, "Services")
	assert.Contains(t, buf.String(), "Services")
	assert.Contains(t, buf.String(), "┬─┐")
}
