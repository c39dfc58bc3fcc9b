package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/internal/presentation/graph"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func views(t *testing.T, opts ...rowexpand.Option) []domain.RowView {
	t.Helper()
	rows := []domain.Row{
		{"key": "a", "name": "alpha", "children": []domain.Row{{"key": "a.1", "name": `say "hi"`}}},
		{"key": "b", "name": "beta", "notes": "more"},
	}
	table, err := rowexpand.New(rows, []domain.Column{{Key: "name"}}, opts...)
	require.NoError(t, err)
	t.Cleanup(table.Close)
	return table.View(domain.FixedNone)
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		opts     []rowexpand.Option
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes and hidden edges",
			contains: []string{
				"graph TD",
				`r_a[["alpha"]]`,
				`r_b["beta"]`,
				"r_a -.-> r_a_1",
			},
		},
		{
			name: "Label escaping",
			contains: []string{
				`r_a_1["say 'hi'"]`,
			},
		},
		{
			name: "Visible children use solid edges",
			opts: []rowexpand.Option{rowexpand.WithDefaultExpandedRowKeys("a")},
			contains: []string{
				"r_a --> r_a_1",
			},
		},
		{
			name: "Detail rows",
			opts: []rowexpand.Option{
				rowexpand.WithDefaultExpandedRowKeys("b"),
				rowexpand.WithExpandedRowRender(func(r domain.Row, _, _ int) any { return r["notes"] }),
			},
			contains: []string{
				`r_b_extra_row[/"detail of b"/]`,
				"r_b --> r_b_extra_row",
			},
		},
		{
			name:    "Overlay",
			opts:    []rowexpand.Option{rowexpand.WithDefaultExpandedRowKeys("b")},
			overlay: &graph.Overlay{Expanded: true, Hidden: true},
			contains: []string{
				"classDef expanded",
				"class r_b expanded;",
				"class r_a_1 hidden;",
			},
			excludes: []string{
				"class r_a expanded;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(views(t, tt.opts...), tt.overlay)
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(got, want), "want substring %q in\n%s", want, got)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}
