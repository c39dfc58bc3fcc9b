package runtime

import (
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/aretw0/rowexpand/pkg/ports"
)

// Walker iterates a row tree for one fixed side and emits the row
// descriptions a RowRenderer consumes, asking the controller what goes
// beneath each row.
type Walker struct {
	ctrl       *Controller
	columns    ports.ColumnManager
	details    *DetailRowBuilder
	visibility ports.VisibilitySource
}

// NewWalker creates a walker.
func NewWalker(ctrl *Controller, columns ports.ColumnManager, details *DetailRowBuilder, visibility ports.VisibilitySource) *Walker {
	return &Walker{
		ctrl:       ctrl,
		columns:    columns,
		details:    details,
		visibility: visibility,
	}
}

// NeedIndentSpaced reports whether any top-level row has children, in which
// case rows without children still reserve the expand icon gutter.
func (w *Walker) NeedIndentSpaced(rows []domain.Row) bool {
	field := w.ctrl.Config().ChildrenColumnName
	for _, row := range rows {
		if row.HasChildren(field) {
			return true
		}
	}
	return false
}

// Walk calls fn for every row description of side, in display order.
// Hidden rows are emitted too, with Visible set to false.
func (w *Walker) Walk(rows []domain.Row, side domain.FixedSide, fn func(domain.RowView) error) error {
	spaced := w.NeedIndentSpaced(rows)
	return w.walk(rows, 0, side, "", true, spaced, fn)
}

// Rows collects the row descriptions of side.
func (w *Walker) Rows(rows []domain.Row, side domain.FixedSide) []domain.RowView {
	var out []domain.RowView
	_ = w.Walk(rows, side, func(v domain.RowView) error {
		out = append(out, v)
		return nil
	})
	return out
}

// Render sends every visible row of side to renderer.
func (w *Walker) Render(rows []domain.Row, side domain.FixedSide, renderer ports.RowRenderer) error {
	return w.Walk(rows, side, func(v domain.RowView) error {
		if !v.Visible {
			return nil
		}
		return renderer.RenderRow(v)
	})
}

func (w *Walker) walk(rows []domain.Row, indent int, side domain.FixedSide, parentKey domain.RowKey, parentVisible, spaced bool, fn func(domain.RowView) error) error {
	cfg := w.ctrl.Config()

	for i, row := range rows {
		key := w.ctrl.RowKey(row, i)
		visible := parentVisible && w.visibility.Visible(key, parentKey)

		view := domain.RowView{
			Key:           key,
			ParentKey:     parentKey,
			Record:        row,
			Index:         i,
			Indent:        indent,
			IndentWidth:   indent * cfg.IndentSize,
			Cells:         w.cells(row, side),
			Prefix:        cfg.PrefixCls + "-row",
			Fixed:         side,
			Expandable:    row.HasChildren(cfg.ChildrenColumnName) || cfg.ExpandedRowRender != nil,
			Expanded:      w.ctrl.IsExpanded(row, i),
			Visible:       visible,
			IconColumn:    cfg.ExpandIconColumnIndex,
			IconAsCell:    cfg.ExpandIconAsCell && side != domain.FixedRight,
			IndentSpaced:  spaced,
			ExpandByClick: cfg.ExpandRowByClick,
		}
		if err := fn(view); err != nil {
			return err
		}

		plan := w.ctrl.ComputeRowRenderPlan(row, i, indent, side, key)
		switch plan.Kind {
		case domain.PlanExpandedDetail:
			detail := w.details.Build(*plan.Detail)
			detail.Visible = detail.Visible && visible
			if err := fn(detail); err != nil {
				return err
			}
		case domain.PlanChildren:
			if err := w.walk(plan.Children.Rows, plan.Children.Indent, side, key, visible, spaced, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Walker) cells(row domain.Row, side domain.FixedSide) []domain.Cell {
	var leaves []domain.Column
	switch side {
	case domain.FixedLeft:
		leaves = w.columns.LeftLeafColumns()
	case domain.FixedRight:
		leaves = w.columns.RightLeafColumns()
	default:
		leaves = w.columns.LeafColumns()
	}

	cells := make([]domain.Cell, 0, len(leaves)+1)
	if w.ctrl.Config().ExpandIconAsCell && side != domain.FixedRight {
		cells = append(cells, domain.Cell{Key: domain.ExpandIconCellKey, Empty: true})
	}
	for _, col := range leaves {
		field := col.DataIndex
		if field == "" {
			field = col.Key
		}
		cells = append(cells, domain.Cell{Key: col.Key, Content: row[field]})
	}
	return cells
}

// Locate finds the row resolving to key anywhere in the tree, with the index
// it has among its siblings.
func (w *Walker) Locate(rows []domain.Row, key domain.RowKey) (domain.Row, int, bool) {
	field := w.ctrl.Config().ChildrenColumnName
	for i, row := range rows {
		if w.ctrl.RowKey(row, i) == key {
			return row, i, true
		}
		if found, idx, ok := w.Locate(row.Children(field), key); ok {
			return found, idx, true
		}
	}
	return nil, 0, false
}
