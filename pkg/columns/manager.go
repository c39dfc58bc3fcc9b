// Package columns partitions table columns into pinned and scrolling leaf sets.
package columns

import "github.com/aretw0/rowexpand/pkg/domain"

// Manager implements ports.ColumnManager over a static column tree.
// Fixed placement is read from top-level columns; grouped columns pass it on
// to their leaves.
type Manager struct {
	columns []domain.Column
}

// NewManager creates a manager over columns.
func NewManager(columns []domain.Column) *Manager {
	return &Manager{columns: columns}
}

// Columns returns the top-level columns.
func (m *Manager) Columns() []domain.Column {
	return m.columns
}

// LeftColumns returns the top-level columns pinned to the left.
func (m *Manager) LeftColumns() []domain.Column {
	return m.withFixed(domain.FixedLeft)
}

// RightColumns returns the top-level columns pinned to the right.
func (m *Manager) RightColumns() []domain.Column {
	return m.withFixed(domain.FixedRight)
}

// LeafColumns returns every leaf column, in display order.
func (m *Manager) LeafColumns() []domain.Column {
	return leaves(m.columns)
}

// LeftLeafColumns returns the leaf columns of the left pinned region.
func (m *Manager) LeftLeafColumns() []domain.Column {
	return leaves(m.LeftColumns())
}

// RightLeafColumns returns the leaf columns of the right pinned region.
func (m *Manager) RightLeafColumns() []domain.Column {
	return leaves(m.RightColumns())
}

// LeafColumnsFor returns the leaf columns rendered on side.
// The unfixed side renders every leaf column.
func (m *Manager) LeafColumnsFor(side domain.FixedSide) []domain.Column {
	switch side {
	case domain.FixedLeft:
		return m.LeftLeafColumns()
	case domain.FixedRight:
		return m.RightLeafColumns()
	default:
		return m.LeafColumns()
	}
}

// IsAnyColumnsFixed reports whether any top-level column is pinned.
func (m *Manager) IsAnyColumnsFixed() bool {
	for _, c := range m.columns {
		if c.Fixed.IsFixed() {
			return true
		}
	}
	return false
}

func (m *Manager) withFixed(side domain.FixedSide) []domain.Column {
	var out []domain.Column
	for _, c := range m.columns {
		if c.Fixed == side {
			out = append(out, c)
		}
	}
	return out
}

func leaves(columns []domain.Column) []domain.Column {
	var out []domain.Column
	for _, c := range columns {
		if c.IsLeaf() {
			out = append(out, c)
			continue
		}
		out = append(out, leaves(c.Children)...)
	}
	return out
}
