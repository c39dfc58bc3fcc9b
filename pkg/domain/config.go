package domain

const (
	DefaultIndentSize = 15
	DefaultPrefixCls  = "rc-table"
)

// ExpandedRowRenderFunc supplies the detail content of an expanded row.
// A nil result means the row has no detail content.
type ExpandedRowRenderFunc func(record Row, index, indent int) any

// RowClassNameFunc computes the class of the detail pseudo-row.
type RowClassNameFunc func(record Row, index, indent int) string

// Config holds the expansion options of a table.
type Config struct {
	// ExpandIconAsCell reserves one placeholder cell before detail content.
	ExpandIconAsCell bool

	// ExpandIconColumnIndex is the column that carries the expand icon.
	ExpandIconColumnIndex int

	// ExpandRowByClick lets a click anywhere on the row toggle it.
	ExpandRowByClick bool

	// ExpandedRowClassName computes the class of detail pseudo-rows. Nil means "".
	ExpandedRowClassName RowClassNameFunc

	// DefaultExpandAllRows seeds every row with children as expanded.
	DefaultExpandAllRows bool

	// ExpandedRowKeys puts the table in controlled mode when non-nil.
	ExpandedRowKeys KeySet

	// DefaultExpandedRowKeys is the initial set in uncontrolled mode.
	DefaultExpandedRowKeys KeySet

	// ChildrenColumnName is the field holding nested rows.
	ChildrenColumnName string

	// IndentSize is the indent width of one nesting level.
	IndentSize int

	// PrefixCls prefixes the classes of rendered rows.
	PrefixCls string

	// ExpandedRowRender supplies detail content. Nil disables detail rows.
	ExpandedRowRender ExpandedRowRenderFunc

	Hooks ExpansionHooks
}

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.ChildrenColumnName == "" {
		c.ChildrenColumnName = DefaultChildrenColumnName
	}
	if c.IndentSize == 0 {
		c.IndentSize = DefaultIndentSize
	}
	if c.PrefixCls == "" {
		c.PrefixCls = DefaultPrefixCls
	}
	return c
}

// Controlled reports whether the expanded set is owned by the caller.
func (c Config) Controlled() bool {
	return c.ExpandedRowKeys != nil
}

// ClassNameFor evaluates ExpandedRowClassName, or returns "" when unset.
func (c Config) ClassNameFor(record Row, index, indent int) string {
	if c.ExpandedRowClassName == nil {
		return ""
	}
	return c.ExpandedRowClassName(record, index, indent)
}
