package runtime_test

import (
	"testing"

	"github.com/aretw0/rowexpand/internal/runtime"
	"github.com/aretw0/rowexpand/pkg/adapters/memory"
	"github.com/aretw0/rowexpand/pkg/columns"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedColumns() *columns.Manager {
	return columns.NewManager([]domain.Column{
		{Key: "name", Fixed: domain.FixedLeft},
		{Key: "age"},
		{Key: "address"},
		{Key: "action", Fixed: domain.FixedRight},
	})
}

func newBuilder(t *testing.T, cfg domain.Config, store *memory.Store) *runtime.DetailRowBuilder {
	t.Helper()
	b, err := runtime.NewDetailRowBuilder(cfg, fixedColumns(),
		runtime.NewHeightTracker(store), runtime.NewVisibilityTracker(store))
	require.NoError(t, err)
	return b
}

func TestNewDetailRowBuilder_RequiresColumns(t *testing.T) {
	store := memory.NewStore()
	_, err := runtime.NewDetailRowBuilder(domain.Config{}, nil,
		runtime.NewHeightTracker(store), runtime.NewVisibilityTracker(store))
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
}

func TestDetailRowBuilder_ColSpan(t *testing.T) {
	b := newBuilder(t, domain.Config{}, memory.NewStore())

	assert.Equal(t, 1, b.ColSpan(domain.FixedLeft))
	assert.Equal(t, 1, b.ColSpan(domain.FixedRight))
	assert.Equal(t, 4, b.ColSpan(domain.FixedNone))
}

func TestDetailRowBuilder_Build(t *testing.T) {
	store := memory.NewStore()
	store.SetState(domain.PatchKeys(domain.KeySet{"7"}))
	b := newBuilder(t, domain.Config{}, store)

	row := b.Build(domain.ExpandedDetail{
		ParentKey: "7",
		Content:   "more",
		ClassName: "extra",
	})

	assert.Equal(t, domain.RowKey("7-extra-row"), row.Key)
	assert.Equal(t, domain.RowKey("7"), row.ParentKey)
	assert.Equal(t, "rc-table-expanded-row", row.Prefix)
	assert.Equal(t, "extra", row.ClassName)
	assert.Equal(t, 1, row.Indent)
	assert.False(t, row.Expandable)
	assert.True(t, row.Detail)
	assert.True(t, row.Visible)
	assert.Equal(t, []domain.Cell{{Key: "extra-row", ColSpan: 4, Content: "more"}}, row.Cells)
}

func TestDetailRowBuilder_IconPlaceholder(t *testing.T) {
	b := newBuilder(t, domain.Config{ExpandIconAsCell: true}, memory.NewStore())

	left := b.Build(domain.ExpandedDetail{ParentKey: "1", Content: "c", Fixed: domain.FixedLeft})
	require.Len(t, left.Cells, 2)
	assert.Equal(t, domain.Cell{Key: "expand-icon-placeholder", Empty: true}, left.Cells[0])
	assert.Equal(t, domain.Cell{Key: "extra-row", ColSpan: 1, Content: "c"}, left.Cells[1])

	right := b.Build(domain.ExpandedDetail{ParentKey: "1", Content: "c", Fixed: domain.FixedRight})
	require.Len(t, right.Cells, 1, "right mirror gets no placeholder")
	assert.Equal(t, domain.NonBreakingSpace, right.Cells[0].Content, "right mirror never duplicates content")
}

func TestDetailRowBuilder_HeightRoundTrip(t *testing.T) {
	store := memory.NewStore()
	store.SetState(domain.PatchKeys(domain.KeySet{"1"}))
	b := newBuilder(t, domain.Config{}, store)

	center := b.Build(domain.ExpandedDetail{ParentKey: "1", Content: "c"})
	require.NotNil(t, center.SaveHeight)
	assert.Zero(t, center.Height)
	center.SaveHeight(3)

	assert.Equal(t, domain.HeightMap{"1-extra-row": 3}, store.GetState().ExpandedRowsHeight)

	left := b.Build(domain.ExpandedDetail{ParentKey: "1", Content: "c", Fixed: domain.FixedLeft})
	assert.Nil(t, left.SaveHeight, "fixed rows read heights, they don't measure")
	assert.Equal(t, float64(3), left.Height)
}

func TestDetailRowBuilder_HiddenWhenParentCollapsed(t *testing.T) {
	b := newBuilder(t, domain.Config{}, memory.NewStore())

	row := b.Build(domain.ExpandedDetail{ParentKey: "1", Content: "c"})
	assert.False(t, row.Visible)
}
