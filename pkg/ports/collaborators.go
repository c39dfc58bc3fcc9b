package ports

import "github.com/aretw0/rowexpand/pkg/domain"

// ColumnManager exposes the leaf column partitions of a table.
type ColumnManager interface {
	LeftLeafColumns() []domain.Column
	RightLeafColumns() []domain.Column
	LeafColumns() []domain.Column
}

// RowRenderer renders a single row description.
type RowRenderer interface {
	RenderRow(row domain.RowView) error
}

// HeightSource computes the height to apply to a row key.
type HeightSource interface {
	// Height returns the stored height of rowKey when the row is fixed.
	// The boolean is false when no height should be forced.
	Height(rowKey domain.RowKey, fixed bool) (float64, bool)

	// SaveHeight records the measured height of an unfixed row.
	SaveHeight(rowKey domain.RowKey, height float64)
}

// VisibilitySource decides whether a row key is currently visible.
type VisibilitySource interface {
	Visible(rowKey, parentKey domain.RowKey) bool
}
