package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/rowexpand/pkg/domain"
)

// Overlay selects which view state is drawn on top of the tree.
type Overlay struct {
	Expanded bool
	Hidden   bool
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) of a row tree
// from its row descriptions, in render order.
// It applies semantic styling:
// - Expandable rows: [[Subroutine]]
// - Detail rows: [/Parallelogram/]
// - Default: [Rectangle]
// Edges to hidden rows are dotted.
func GenerateMermaid(views []domain.RowView, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	visible := make(map[domain.RowKey]bool, len(views))
	for _, v := range views {
		visible[v.Key] = v.Visible
	}

	for _, v := range views {
		safeID := sanitizeMermaidID(string(v.Key))

		opener, closer := "[", "]"
		switch {
		case v.Detail:
			opener, closer = "[/", "/]"
		case v.Expandable:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, rowLabel(v), closer))

		if v.ParentKey != "" {
			arrow := "-->"
			if !visible[v.Key] {
				arrow = "-.->"
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(string(v.ParentKey)), arrow, safeID))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		if overlay.Expanded {
			sb.WriteString("    classDef expanded fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		}
		if overlay.Hidden {
			sb.WriteString("    classDef hidden fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")
		}
		for _, v := range views {
			safeID := sanitizeMermaidID(string(v.Key))
			if overlay.Expanded && v.Expanded && !v.Detail {
				sb.WriteString(fmt.Sprintf("    class %s expanded;\n", safeID))
			}
			if overlay.Hidden && !v.Visible {
				sb.WriteString(fmt.Sprintf("    class %s hidden;\n", safeID))
			}
		}
	}

	return sb.String()
}

// rowLabel is the first non-empty cell, or the row key.
func rowLabel(v domain.RowView) string {
	label := string(v.Key)
	if v.Detail {
		label = "detail of " + string(v.ParentKey)
	} else {
		for _, c := range v.Cells {
			if c.Empty || c.Content == nil {
				continue
			}
			if s := fmt.Sprint(c.Content); s != "" {
				label = s
				break
			}
		}
	}
	// Escape double quotes for Mermaid labels
	return strings.ReplaceAll(label, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return "r_" + s
}
