package domain

import "fmt"

// NonBreakingSpace fills the right-fixed mirror of a detail row.
const NonBreakingSpace = "\u00a0"

const (
	ExtraRowSuffix    = "-extra-row"
	ExtraRowCellKey   = "extra-row"
	IconPlaceholderID = "expand-icon-placeholder"
	ExpandIconCellKey = "expand-icon"
)

// ExtraRowKey returns the synthetic key of the detail pseudo-row of parent.
func ExtraRowKey(parent RowKey) RowKey {
	return RowKey(fmt.Sprintf("%s%s", parent, ExtraRowSuffix))
}

// Cell is one rendered cell of a row.
type Cell struct {
	Key     string `json:"key"`
	ColSpan int    `json:"col_span,omitempty"`
	Content any    `json:"content,omitempty"`

	// Empty cells reserve space but render nothing.
	Empty bool `json:"empty,omitempty"`
}

// RowView is the description of one row handed to a RowRenderer.
type RowView struct {
	Key       RowKey `json:"key"`
	ParentKey RowKey `json:"parent_key,omitempty"`
	Record    Row    `json:"record,omitempty"`
	Index     int    `json:"index"`
	Indent    int    `json:"indent"`

	// IndentWidth is Indent multiplied by the configured indent size.
	IndentWidth int `json:"indent_width"`

	Cells     []Cell    `json:"cells"`
	ClassName string    `json:"class_name,omitempty"`
	Prefix    string    `json:"prefix"`
	Fixed     FixedSide `json:"fixed,omitempty"`

	Expandable bool `json:"expandable"`
	Expanded   bool `json:"expanded"`
	Visible    bool `json:"visible"`

	// IconColumn is the cell index carrying the expand icon.
	IconColumn int `json:"icon_column"`

	// IconAsCell renders the expand icon in its own leading cell.
	IconAsCell bool `json:"icon_as_cell,omitempty"`

	// IndentSpaced reserves the icon gutter on rows without children.
	IndentSpaced bool `json:"indent_spaced,omitempty"`

	// ExpandByClick lets activation of the whole row toggle it.
	ExpandByClick bool `json:"expand_by_click,omitempty"`

	// Detail marks a synthetic row hosting expanded content.
	Detail bool `json:"detail,omitempty"`

	// Height is the height to force on the row; zero means natural height.
	Height float64 `json:"height,omitempty"`

	// SaveHeight reports the measured height of the row. May be nil.
	SaveHeight func(height float64) `json:"-"`
}
