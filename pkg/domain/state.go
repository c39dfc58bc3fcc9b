package domain

// HeightMap maps a row key to its measured height.
type HeightMap map[RowKey]float64

// Clone returns an independent copy. The copy is never nil.
func (h HeightMap) Clone() HeightMap {
	out := make(HeightMap, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// ViewState is the snapshot held by the view-state store.
type ViewState struct {
	// ExpandedRowKeys is written only by the expansion controller.
	ExpandedRowKeys KeySet `json:"expanded_row_keys"`

	// ExpandedRowsHeight is written only by the height collaborator.
	ExpandedRowsHeight HeightMap `json:"expanded_rows_height"`
}

// Snapshot returns a deep copy of the state.
func (s ViewState) Snapshot() ViewState {
	return ViewState{
		ExpandedRowKeys:    s.ExpandedRowKeys.Clone(),
		ExpandedRowsHeight: s.ExpandedRowsHeight.Clone(),
	}
}

// StatePatch is a partial update of ViewState.
// Nil fields are left untouched; non-nil fields replace the whole value.
type StatePatch struct {
	ExpandedRowKeys    *KeySet
	ExpandedRowsHeight *HeightMap
}

// PatchKeys builds a patch replacing the expanded keys.
func PatchKeys(keys KeySet) StatePatch {
	k := keys.Clone()
	return StatePatch{ExpandedRowKeys: &k}
}

// PatchHeights builds a patch replacing the height map.
func PatchHeights(heights HeightMap) StatePatch {
	h := heights.Clone()
	return StatePatch{ExpandedRowsHeight: &h}
}

// Apply returns the state resulting from applying p to s.
func (p StatePatch) Apply(s ViewState) ViewState {
	next := s.Snapshot()
	if p.ExpandedRowKeys != nil {
		next.ExpandedRowKeys = p.ExpandedRowKeys.Clone()
	}
	if p.ExpandedRowsHeight != nil {
		next.ExpandedRowsHeight = p.ExpandedRowsHeight.Clone()
	}
	return next
}
