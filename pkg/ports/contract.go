package ports

import (
	"testing"

	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunViewStateStoreContract verifies that an adapter complies with ViewStateStore.
// The store must be freshly created.
func RunViewStateStoreContract(t *testing.T, store ViewStateStore) {
	t.Helper()

	t.Run("PartialUpdates", func(t *testing.T) {
		store.SetState(domain.StatePatch{
			ExpandedRowKeys:    &domain.KeySet{"1", "2"},
			ExpandedRowsHeight: &domain.HeightMap{},
		})
		store.SetState(domain.PatchHeights(domain.HeightMap{"1-extra-row": 4}))

		state := store.GetState()
		assert.Equal(t, domain.KeySet{"1", "2"}, state.ExpandedRowKeys)
		assert.Equal(t, domain.HeightMap{"1-extra-row": 4}, state.ExpandedRowsHeight)
	})

	t.Run("ReadsAreCopies", func(t *testing.T) {
		store.SetState(domain.PatchKeys(domain.KeySet{"a"}))

		state := store.GetState()
		state.ExpandedRowKeys[0] = "mutated"
		state.ExpandedRowsHeight["x"] = 1

		again := store.GetState()
		assert.Equal(t, domain.KeySet{"a"}, again.ExpandedRowKeys)
		assert.NotContains(t, again.ExpandedRowsHeight, domain.RowKey("x"))
	})

	t.Run("WritesAreCopies", func(t *testing.T) {
		keys := domain.KeySet{"a", "b"}
		store.SetState(domain.StatePatch{ExpandedRowKeys: &keys})
		keys[0] = "mutated"

		assert.Equal(t, domain.KeySet{"a", "b"}, store.GetState().ExpandedRowKeys)
	})

	t.Run("Subscribe", func(t *testing.T) {
		var seen []domain.KeySet
		unsubscribe := store.Subscribe(func(s domain.ViewState) {
			seen = append(seen, s.ExpandedRowKeys)
		})

		store.SetState(domain.PatchKeys(domain.KeySet{"s1"}))
		store.SetState(domain.PatchKeys(domain.KeySet{"s1", "s2"}))
		unsubscribe()
		store.SetState(domain.PatchKeys(domain.KeySet{}))

		require.Len(t, seen, 2)
		assert.Equal(t, domain.KeySet{"s1"}, seen[0])
		assert.Equal(t, domain.KeySet{"s1", "s2"}, seen[1])
	})

	t.Run("UnsubscribeTwice", func(t *testing.T) {
		unsubscribe := store.Subscribe(func(domain.ViewState) {})
		unsubscribe()
		assert.NotPanics(t, unsubscribe)
	})
}
