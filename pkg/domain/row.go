package domain

import (
	"fmt"
	"strconv"
)

// DefaultChildrenColumnName is the field that holds nested rows unless configured otherwise.
const DefaultChildrenColumnName = "children"

// Row is a single record displayed by the table.
// Its fields are opaque to the expansion logic, except for the children field.
type Row map[string]any

// RowKey identifies a row within the currently visible flattened set.
type RowKey string

// RowKeyResolver returns a stable key for a row at its positional index.
type RowKeyResolver func(row Row, index int) RowKey

// Children returns the nested rows stored under field.
// It accepts the shapes produced by Go literals and by YAML/JSON decoding.
// Anything else yields nil.
func (r Row) Children(field string) []Row {
	raw, ok := r[field]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case []Row:
		return v
	case []map[string]any:
		rows := make([]Row, 0, len(v))
		for _, m := range v {
			rows = append(rows, Row(m))
		}
		return rows
	case []any:
		rows := make([]Row, 0, len(v))
		for _, item := range v {
			switch m := item.(type) {
			case Row:
				rows = append(rows, m)
			case map[string]any:
				rows = append(rows, Row(m))
			}
		}
		return rows
	}
	return nil
}

// HasChildren reports whether the row holds at least one child row under field.
func (r Row) HasChildren(field string) bool {
	return len(r.Children(field)) > 0
}

// KeyOf converts a scalar value into a RowKey.
// Integral floats (as produced by JSON decoding) are printed without a fraction,
// so 1 and 1.0 resolve to the same key.
func KeyOf(v any) RowKey {
	switch k := v.(type) {
	case RowKey:
		return k
	case string:
		return RowKey(k)
	case int:
		return RowKey(strconv.Itoa(k))
	case int64:
		return RowKey(strconv.FormatInt(k, 10))
	case float64:
		if k == float64(int64(k)) {
			return RowKey(strconv.FormatInt(int64(k), 10))
		}
		return RowKey(strconv.FormatFloat(k, 'f', -1, 64))
	case fmt.Stringer:
		return RowKey(k.String())
	}
	return RowKey(fmt.Sprint(v))
}

// FieldKeyResolver returns a resolver reading the key from field.
// Rows missing the field fall back to their positional index.
func FieldKeyResolver(field string) RowKeyResolver {
	return func(row Row, index int) RowKey {
		if v, ok := row[field]; ok && v != nil {
			return KeyOf(v)
		}
		return KeyOf(index)
	}
}
