package runtime

import "github.com/aretw0/rowexpand/pkg/domain"

// FlattenRows returns rows followed by their descendants in breadth-first order.
// Each row is enqueued exactly once, when its parent is visited, so the walk
// terminates for any finite tree.
func FlattenRows(rows []domain.Row, childrenField string) []domain.Row {
	queue := make([]domain.Row, len(rows))
	copy(queue, rows)

	for i := 0; i < len(queue); i++ {
		queue = append(queue, queue[i].Children(childrenField)...)
	}
	return queue
}

// InitialExpandedKeys computes the expanded set a controller starts with.
//
// With DefaultExpandAllRows every row holding children, at any depth, is
// expanded; its key is resolved with its position in the flattened sequence.
// Otherwise the controlled keys win over the default keys.
func InitialExpandedKeys(rows []domain.Row, cfg domain.Config, resolve domain.RowKeyResolver) domain.KeySet {
	cfg = cfg.WithDefaults()

	if !cfg.DefaultExpandAllRows {
		if cfg.Controlled() {
			return cfg.ExpandedRowKeys.Clone()
		}
		return domain.NewKeySet(cfg.DefaultExpandedRowKeys...)
	}

	keys := domain.KeySet{}
	for i, row := range FlattenRows(rows, cfg.ChildrenColumnName) {
		if row.HasChildren(cfg.ChildrenColumnName) {
			keys = keys.With(resolve(row, i))
		}
	}
	return keys
}
