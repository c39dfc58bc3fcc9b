package domain

// FixedSide tells which pinned region a row segment belongs to.
type FixedSide string

const (
	FixedNone  FixedSide = ""      // Scrolling center region
	FixedLeft  FixedSide = "left"  // Pinned to the left
	FixedRight FixedSide = "right" // Pinned to the right
)

// IsFixed reports whether the side is pinned.
func (f FixedSide) IsFixed() bool {
	return f != FixedNone
}

// PlanKind tags the variant carried by a RenderPlan.
type PlanKind string

const (
	PlanNone           PlanKind = "none"
	PlanExpandedDetail PlanKind = "expanded_detail"
	PlanChildren       PlanKind = "children"
)

// ExpandedDetail asks the host to inject a detail pseudo-row under ParentKey.
type ExpandedDetail struct {
	ParentKey RowKey    `json:"parent_key"`
	Content   any       `json:"content"`
	ClassName string    `json:"class_name,omitempty"`
	Fixed     FixedSide `json:"fixed,omitempty"`
}

// ChildRows asks the host to render nested rows one level deeper.
type ChildRows struct {
	Rows   []Row `json:"rows"`
	Indent int   `json:"indent"`
}

// RenderPlan describes what goes beneath a row.
// Exactly one payload matches Kind; callers switch on Kind.
type RenderPlan struct {
	Kind     PlanKind        `json:"kind"`
	Detail   *ExpandedDetail `json:"detail,omitempty"`
	Children *ChildRows      `json:"children,omitempty"`
}

// NoPlan is the plan for a row that renders nothing beneath it.
func NoPlan() RenderPlan {
	return RenderPlan{Kind: PlanNone}
}

// DetailPlan wraps an ExpandedDetail.
func DetailPlan(d ExpandedDetail) RenderPlan {
	return RenderPlan{Kind: PlanExpandedDetail, Detail: &d}
}

// ChildrenPlan wraps a ChildRows.
func ChildrenPlan(rows []Row, indent int) RenderPlan {
	return RenderPlan{Kind: PlanChildren, Children: &ChildRows{Rows: rows, Indent: indent}}
}
