package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySet_WithIsIdempotent(t *testing.T) {
	set := NewKeySet("a", "b")

	once := set.With("c")
	twice := once.With("c")

	assert.Equal(t, KeySet{"a", "b", "c"}, once)
	assert.Equal(t, once, twice)
	assert.Equal(t, KeySet{"a", "b"}, set, "receiver must not be mutated")
}

func TestKeySet_WithoutIsIdempotent(t *testing.T) {
	set := NewKeySet("a", "b", "c")

	once := set.Without("b")
	twice := once.Without("b")

	assert.Equal(t, KeySet{"a", "c"}, once)
	assert.Equal(t, once, twice)
	assert.Equal(t, KeySet{"a", "b", "c"}, set)
}

func TestKeySet_RoundTripPreservesOrder(t *testing.T) {
	set := NewKeySet("x", "y")
	assert.Equal(t, set, set.With("z").Without("z"))
}

func TestNewKeySet_DropsDuplicates(t *testing.T) {
	assert.Equal(t, KeySet{"1", "2"}, NewKeySet("1", "2", "1"))
}

func TestKeySet_CloneIsNeverNil(t *testing.T) {
	var set KeySet
	clone := set.Clone()
	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}

func TestStatePatch_Apply(t *testing.T) {
	base := ViewState{
		ExpandedRowKeys:    KeySet{"1"},
		ExpandedRowsHeight: HeightMap{"1-extra-row": 3},
	}

	next := PatchKeys(KeySet{"2"}).Apply(base)
	assert.Equal(t, KeySet{"2"}, next.ExpandedRowKeys)
	assert.Equal(t, HeightMap{"1-extra-row": 3}, next.ExpandedRowsHeight)

	next = PatchHeights(HeightMap{}).Apply(next)
	assert.Equal(t, KeySet{"2"}, next.ExpandedRowKeys)
	assert.Empty(t, next.ExpandedRowsHeight)

	// base is untouched
	assert.Equal(t, KeySet{"1"}, base.ExpandedRowKeys)
}

func TestParseKeySet(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    KeySet
		wantErr bool
	}{
		{"empty", "", KeySet{}, false},
		{"csv", "a, b,,a", KeySet{"a", "b"}, false},
		{"json", `["x", 2]`, KeySet{"x", "2"}, false},
		{"bad json", `["x"`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeySet(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
