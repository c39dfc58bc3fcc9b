package runtime

import (
	"log/slog"

	"github.com/aretw0/rowexpand/internal/logging"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/aretw0/rowexpand/pkg/ports"
)

// Controller owns the expansion policy of a table.
// It is the only writer of the expanded keys in the view-state store.
type Controller struct {
	cfg        domain.Config
	resolve    domain.RowKeyResolver
	store      ports.ViewStateStore
	logger     *slog.Logger
	controlled bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the structured logger of the controller.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController builds a controller over rows and seeds the store with the
// initial expanded set and an empty height map.
func NewController(rows []domain.Row, cfg domain.Config, resolve domain.RowKeyResolver, store ports.ViewStateStore, opts ...ControllerOption) (*Controller, error) {
	if resolve == nil {
		return nil, domain.ErrMissingResolver
	}
	if store == nil {
		return nil, domain.ErrMissingStore
	}

	cfg = cfg.WithDefaults()
	c := &Controller{
		cfg:        cfg,
		resolve:    resolve,
		store:      store,
		logger:     logging.NewNop(),
		controlled: cfg.Controlled(),
	}
	for _, opt := range opts {
		opt(c)
	}

	initial := InitialExpandedKeys(rows, cfg, resolve)
	heights := domain.HeightMap{}
	store.SetState(domain.StatePatch{
		ExpandedRowKeys:    &initial,
		ExpandedRowsHeight: &heights,
	})

	c.logger.Debug("expansion controller ready",
		"rows", len(rows),
		"controlled", c.controlled,
		"expand_all", cfg.DefaultExpandAllRows,
		"expanded_row_keys", initial.Strings(),
	)
	return c, nil
}

// Config returns the effective configuration.
func (c *Controller) Config() domain.Config {
	return c.cfg
}

// Controlled reports whether the expanded set is owned by the caller.
func (c *Controller) Controlled() bool {
	return c.controlled
}

// RowKey resolves the key of record at index.
func (c *Controller) RowKey(record domain.Row, index int) domain.RowKey {
	return c.resolve(record, index)
}

// ExpandedRowKeys returns the current expanded set.
func (c *Controller) ExpandedRowKeys() domain.KeySet {
	return c.store.GetState().ExpandedRowKeys
}

// OnControlledKeysChanged replaces the stored expanded set with keys.
// A nil slice means the caller supplies no keys and is ignored.
func (c *Controller) OnControlledKeysChanged(keys domain.KeySet) {
	if keys == nil {
		return
	}
	c.controlled = true
	c.cfg.ExpandedRowKeys = keys.Clone()
	c.store.SetState(domain.PatchKeys(keys))
	c.logger.Debug("controlled keys replaced", "expanded_row_keys", keys.Strings())
}

// IsExpanded reports whether the key of record at index is in the expanded set.
func (c *Controller) IsExpanded(record domain.Row, index int) bool {
	return c.ExpandedRowKeys().Contains(c.resolve(record, index))
}

// Toggle requests record to become expanded or collapsed.
//
// The set changes only when the request flips the current membership; any
// other combination leaves the store alone and skips OnExpandedRowsChange.
// OnExpand fires on every call. The returned flag reports whether a change
// was committed.
func (c *Controller) Toggle(expanded bool, record domain.Row, index int, ev domain.InputEvent) bool {
	if ev != nil {
		ev.PreventDefault()
		ev.StopPropagation()
	}

	key := c.resolve(record, index)
	current := c.ExpandedRowKeys()
	member := current.Contains(key)

	committed := false
	switch {
	case member && !expanded:
		c.commit(current.Without(key), key, expanded)
		committed = true
	case !member && expanded:
		c.commit(current.With(key), key, expanded)
		committed = true
	}

	if c.cfg.Hooks.OnExpand != nil {
		c.cfg.Hooks.OnExpand(expanded, record)
	}
	return committed
}

func (c *Controller) commit(keys domain.KeySet, key domain.RowKey, expanded bool) {
	if !c.controlled {
		c.store.SetState(domain.PatchKeys(keys))
	}

	c.logger.Debug("expanded rows changed",
		"row_key", string(key),
		"expanded", expanded,
		"controlled", c.controlled,
		"keys", keys.Strings(),
	)

	if c.cfg.Hooks.OnExpandedRowsChange != nil {
		c.cfg.Hooks.OnExpandedRowsChange(keys.Clone())
	}
}

// ComputeRowRenderPlan decides what to render beneath record.
// Detail content wins over child rows: a row never shows both.
func (c *Controller) ComputeRowRenderPlan(record domain.Row, index, indent int, fixed domain.FixedSide, parentKey domain.RowKey) domain.RenderPlan {
	if c.cfg.ExpandedRowRender != nil && c.IsExpanded(record, index) {
		if content := c.cfg.ExpandedRowRender(record, index, indent); content != nil {
			return domain.DetailPlan(domain.ExpandedDetail{
				ParentKey: parentKey,
				Content:   content,
				ClassName: c.cfg.ClassNameFor(record, index, indent),
				Fixed:     fixed,
			})
		}
	}

	if children := record.Children(c.cfg.ChildrenColumnName); len(children) > 0 {
		return domain.ChildrenPlan(children, indent+1)
	}

	return domain.NoPlan()
}
