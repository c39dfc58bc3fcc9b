package runtime

import (
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/aretw0/rowexpand/pkg/ports"
)

// DetailRowBuilder turns an ExpandedDetail plan into the synthetic row that
// hosts the detail content.
type DetailRowBuilder struct {
	cfg        domain.Config
	columns    ports.ColumnManager
	heights    ports.HeightSource
	visibility ports.VisibilitySource
}

// NewDetailRowBuilder creates a builder. Columns, heights and visibility are required.
func NewDetailRowBuilder(cfg domain.Config, columns ports.ColumnManager, heights ports.HeightSource, visibility ports.VisibilitySource) (*DetailRowBuilder, error) {
	if columns == nil {
		return nil, domain.ErrMissingColumns
	}
	if heights == nil || visibility == nil {
		return nil, domain.ErrMissingStore
	}
	return &DetailRowBuilder{
		cfg:        cfg.WithDefaults(),
		columns:    columns,
		heights:    heights,
		visibility: visibility,
	}, nil
}

// ColSpan returns how many leaf columns the detail cell spans on side.
func (b *DetailRowBuilder) ColSpan(side domain.FixedSide) int {
	switch side {
	case domain.FixedLeft:
		return len(b.columns.LeftLeafColumns())
	case domain.FixedRight:
		return len(b.columns.RightLeafColumns())
	default:
		return len(b.columns.LeafColumns())
	}
}

// Build creates the detail pseudo-row for plan.
// The right-fixed mirror only carries a blank so content isn't duplicated.
func (b *DetailRowBuilder) Build(plan domain.ExpandedDetail) domain.RowView {
	content := plan.Content
	if plan.Fixed == domain.FixedRight {
		content = domain.NonBreakingSpace
	}

	cells := []domain.Cell{{
		Key:     domain.ExtraRowCellKey,
		ColSpan: b.ColSpan(plan.Fixed),
		Content: content,
	}}
	if b.cfg.ExpandIconAsCell && plan.Fixed != domain.FixedRight {
		cells = append([]domain.Cell{{Key: domain.IconPlaceholderID, Empty: true}}, cells...)
	}

	rowKey := domain.ExtraRowKey(plan.ParentKey)
	fixed := plan.Fixed.IsFixed()

	row := domain.RowView{
		Key:         rowKey,
		ParentKey:   plan.ParentKey,
		Indent:      1,
		IndentWidth: b.cfg.IndentSize,
		Cells:       cells,
		ClassName:   plan.ClassName,
		Prefix:      b.cfg.PrefixCls + "-expanded-row",
		Fixed:       plan.Fixed,
		Expandable:  false,
		Visible:     b.visibility.Visible(rowKey, rowKey),
		Detail:      true,
	}
	if height, ok := b.heights.Height(rowKey, fixed); ok {
		row.Height = height
	}
	if !fixed {
		row.SaveHeight = func(height float64) {
			b.heights.SaveHeight(rowKey, height)
		}
	}
	return row
}
