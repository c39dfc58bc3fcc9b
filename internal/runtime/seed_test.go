package runtime_test

import (
	"testing"

	"github.com/aretw0/rowexpand/internal/runtime"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestFlattenRows_BreadthFirst(t *testing.T) {
	a1 := domain.Row{"id": "A1", "children": []domain.Row{{"id": "A1a"}}}
	a := domain.Row{"id": "A", "children": []domain.Row{a1}}
	b := domain.Row{"id": "B", "children": []domain.Row{{"id": "B1"}}}

	flat := runtime.FlattenRows([]domain.Row{a, b}, "children")

	ids := make([]any, 0, len(flat))
	for _, r := range flat {
		ids = append(ids, r["id"])
	}
	assert.Equal(t, []any{"A", "B", "A1", "B1", "A1a"}, ids)
}

func TestInitialExpandedKeys_ExpandAll(t *testing.T) {
	a1 := domain.Row{"id": "A1"}
	rows := []domain.Row{
		{"id": "A", "children": []domain.Row{a1}},
		{"id": "B"},
	}

	flat := runtime.FlattenRows(rows, "children")
	assert.Contains(t, flat, a1)

	keys := runtime.InitialExpandedKeys(rows, domain.Config{DefaultExpandAllRows: true}, domain.FieldKeyResolver("id"))
	assert.Equal(t, domain.KeySet{"A"}, keys)
}

func TestInitialExpandedKeys_ExpandAllNested(t *testing.T) {
	rows := []domain.Row{
		{"id": "A", "children": []domain.Row{
			{"id": "A1", "children": []domain.Row{{"id": "A1a"}}},
		}},
	}

	keys := runtime.InitialExpandedKeys(rows, domain.Config{
		DefaultExpandAllRows: true,
		// Expand-all ignores explicit keys.
		ExpandedRowKeys: domain.KeySet{"zzz"},
	}, domain.FieldKeyResolver("id"))

	assert.Equal(t, domain.KeySet{"A", "A1"}, keys)
}

func TestInitialExpandedKeys_UsesFlattenedIndex(t *testing.T) {
	rows := []domain.Row{
		{"children": []domain.Row{{"children": []domain.Row{{}}}}},
		{},
	}
	byIndex := func(row domain.Row, index int) domain.RowKey { return domain.KeyOf(index) }

	keys := runtime.InitialExpandedKeys(rows, domain.Config{DefaultExpandAllRows: true}, byIndex)

	// Worklist: [root0, root1, child, grandchild]; rows with children sit at 0 and 2.
	assert.Equal(t, domain.KeySet{"0", "2"}, keys)
}

func TestInitialExpandedKeys_Defaults(t *testing.T) {
	keys := runtime.InitialExpandedKeys(nil, domain.Config{
		DefaultExpandedRowKeys: domain.KeySet{"1", "1", "2"},
	}, domain.FieldKeyResolver("id"))
	assert.Equal(t, domain.KeySet{"1", "2"}, keys)

	empty := runtime.InitialExpandedKeys(nil, domain.Config{}, domain.FieldKeyResolver("id"))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
