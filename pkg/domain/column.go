package domain

// Column describes a table column. Columns with Children are groups;
// only leaf columns hold cells.
type Column struct {
	Key       string    `json:"key" mapstructure:"key"`
	Title     string    `json:"title" mapstructure:"title"`
	DataIndex string    `json:"data_index" mapstructure:"data_index"`
	Width     int       `json:"width,omitempty" mapstructure:"width"`
	Fixed     FixedSide `json:"fixed,omitempty" mapstructure:"fixed"`
	Children  []Column  `json:"children,omitempty" mapstructure:"children"`
}

// IsLeaf reports whether the column holds cells.
func (c Column) IsLeaf() bool {
	return len(c.Children) == 0
}
