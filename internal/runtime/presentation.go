package runtime

import (
	"strings"

	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/aretw0/rowexpand/pkg/ports"
)

// HeightTracker implements ports.HeightSource on top of the view-state store.
// It is the only writer of ExpandedRowsHeight.
type HeightTracker struct {
	store ports.ViewStateStore
}

// NewHeightTracker creates a tracker bound to store.
func NewHeightTracker(store ports.ViewStateStore) *HeightTracker {
	return &HeightTracker{store: store}
}

// Height returns the measured height of rowKey for fixed rows.
// Unfixed rows keep their natural height.
func (h *HeightTracker) Height(rowKey domain.RowKey, fixed bool) (float64, bool) {
	if !fixed {
		return 0, false
	}
	height, ok := h.store.GetState().ExpandedRowsHeight[rowKey]
	return height, ok
}

// SaveHeight stores the measured height of rowKey.
// Writing an unchanged value is skipped so subscribers aren't woken for nothing.
func (h *HeightTracker) SaveHeight(rowKey domain.RowKey, height float64) {
	heights := h.store.GetState().ExpandedRowsHeight
	if old, ok := heights[rowKey]; ok && old == height {
		return
	}
	next := heights.Clone()
	next[rowKey] = height
	h.store.SetState(domain.PatchHeights(next))
}

// VisibilityTracker implements ports.VisibilitySource on top of the view-state store.
type VisibilityTracker struct {
	store ports.ViewStateStore
}

// NewVisibilityTracker creates a tracker bound to store.
func NewVisibilityTracker(store ports.ViewStateStore) *VisibilityTracker {
	return &VisibilityTracker{store: store}
}

// Visible reports whether rowKey is shown.
// A detail pseudo-row is visible while its parent row is expanded; any other
// row is visible while parentKey is expanded. Top-level rows are always visible.
func (v *VisibilityTracker) Visible(rowKey, parentKey domain.RowKey) bool {
	keys := v.store.GetState().ExpandedRowKeys

	if parent, ok := strings.CutSuffix(string(rowKey), domain.ExtraRowSuffix); ok {
		return keys.Contains(domain.RowKey(parent))
	}
	if parentKey == "" {
		return true
	}
	return keys.Contains(parentKey)
}
