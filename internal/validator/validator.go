package validator

import (
	"errors"
	"fmt"

	"github.com/aretw0/rowexpand/pkg/adapters/file"
	"github.com/aretw0/rowexpand/pkg/domain"
)

// ValidateDefinition checks a table definition for problems the table
// itself tolerates silently: duplicate keys, keys naming no row, and an
// expand icon column outside the leaf columns.
func ValidateDefinition(def *file.Definition) error {
	var problems []error
	s := def.Settings

	// 1. Columns
	leaves := 0
	seenCols := make(map[string]bool)
	var walkCols func(cols []domain.Column)
	walkCols = func(cols []domain.Column) {
		for _, c := range cols {
			if seenCols[c.Key] {
				problems = append(problems, fmt.Errorf("duplicate column key '%s'", c.Key))
			}
			seenCols[c.Key] = true
			if c.IsLeaf() {
				leaves++
			}
			walkCols(c.Children)
		}
	}
	walkCols(def.Columns)

	if leaves > 0 && (s.ExpandIconColumnIndex < 0 || s.ExpandIconColumnIndex >= leaves) {
		problems = append(problems, fmt.Errorf("expand_icon_column_index %d out of range [0,%d)", s.ExpandIconColumnIndex, leaves))
	}

	// 2. Rows
	keyField := s.RowKey
	if keyField == "" {
		keyField = "key"
	}
	childrenField := s.ChildrenColumnName
	if childrenField == "" {
		childrenField = domain.DefaultChildrenColumnName
	}

	seenRows := make(map[domain.RowKey]bool)
	// known also holds the positional keys of rows without a key field.
	known := make(map[domain.RowKey]bool)
	var walkRows func(rows []domain.Row, path string)
	walkRows = func(rows []domain.Row, path string) {
		for i, row := range rows {
			where := fmt.Sprintf("%s[%d]", path, i)

			// Rows keyed by position repeat across levels; only explicit keys must be unique.
			if v, ok := row[keyField]; ok && v != nil {
				key := domain.KeyOf(v)
				if seenRows[key] {
					problems = append(problems, fmt.Errorf("%s: duplicate row key '%s'", where, key))
				}
				seenRows[key] = true
				known[key] = true
			} else {
				known[domain.KeyOf(i)] = true
			}

			if raw, ok := row[childrenField]; ok && raw != nil && len(row.Children(childrenField)) == 0 && !isEmptyList(raw) {
				problems = append(problems, fmt.Errorf("%s: '%s' is not a list of rows", where, childrenField))
			}
			walkRows(row.Children(childrenField), where+"."+childrenField)
		}
	}
	walkRows(def.Rows, "rows")

	// 3. Expanded keys must name rows
	for _, group := range []struct {
		name string
		keys []string
	}{
		{"expanded_row_keys", s.ExpandedRowKeys},
		{"default_expanded_row_keys", s.DefaultExpandedRowKeys},
	} {
		for _, k := range group.keys {
			if !known[domain.RowKey(k)] {
				problems = append(problems, fmt.Errorf("%s: no row with key '%s'", group.name, k))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidTable, errors.Join(problems...))
	}
	return nil
}

func isEmptyList(v any) bool {
	switch l := v.(type) {
	case []any:
		return len(l) == 0
	case []domain.Row:
		return len(l) == 0
	case []map[string]any:
		return len(l) == 0
	}
	return false
}
