package rowexpand

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/aretw0/rowexpand/internal/logging"
	"github.com/aretw0/rowexpand/internal/runtime"
	"github.com/aretw0/rowexpand/pkg/adapters/memory"
	"github.com/aretw0/rowexpand/pkg/columns"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/aretw0/rowexpand/pkg/observability"
	"github.com/aretw0/rowexpand/pkg/ports"
)

// Version is the library version reported by the CLI and the adapters.
const Version = "0.3.0"

// DefaultRowKey is the row field read by the default key resolver.
const DefaultRowKey = "key"

// Table is the high-level entry point of the library.
// It wires the expansion controller to a view-state store, a column manager
// and the presentation collaborators, and serializes mutations so adapters
// may call it from concurrent goroutines.
//
// Hooks and subscribers registered through the table run after the mutation
// that triggered them has released the table, so they may call back into it
// (a controlling owner answering OnExpandedRowsChange with
// SetExpandedRowKeys, for instance).
type Table struct {
	rows    []domain.Row
	cfg     domain.Config
	resolve domain.RowKeyResolver
	store   ports.ViewStateStore
	columns *columns.Manager
	logger  *slog.Logger
	metrics *observability.Metrics

	ctrl        *runtime.Controller
	walker      *runtime.Walker
	stopMetrics func()

	mu sync.Mutex

	queueMu sync.Mutex
	queue   []func()
	busy    atomic.Bool
}

// Option defines a functional option for configuring the Table.
type Option func(*Table)

// WithStore injects the view-state store shared with the rest of the widget.
func WithStore(store ports.ViewStateStore) Option {
	return func(t *Table) {
		t.store = store
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		t.logger = logger
	}
}

// WithMetrics records toggle metrics and the expanded-rows gauge.
func WithMetrics(m *observability.Metrics) Option {
	return func(t *Table) {
		t.metrics = m
	}
}

// WithKeyResolver sets the function computing row keys.
func WithKeyResolver(resolve domain.RowKeyResolver) Option {
	return func(t *Table) {
		t.resolve = resolve
	}
}

// WithRowKey reads row keys from field (default "key").
func WithRowKey(field string) Option {
	return func(t *Table) {
		t.resolve = domain.FieldKeyResolver(field)
	}
}

// WithConfig replaces the whole expansion configuration.
func WithConfig(cfg domain.Config) Option {
	return func(t *Table) {
		t.cfg = cfg
	}
}

// WithExpandAllRows expands every row that has children at construction.
func WithExpandAllRows() Option {
	return func(t *Table) {
		t.cfg.DefaultExpandAllRows = true
	}
}

// WithoutExpandAllRows cancels an earlier WithExpandAllRows, so the
// default expanded keys seed the table instead.
func WithoutExpandAllRows() Option {
	return func(t *Table) {
		t.cfg.DefaultExpandAllRows = false
	}
}

// WithExpandedRowKeys puts the table in controlled mode.
func WithExpandedRowKeys(keys ...domain.RowKey) Option {
	return func(t *Table) {
		t.cfg.ExpandedRowKeys = domain.NewKeySet(keys...)
	}
}

// WithDefaultExpandedRowKeys sets the initial expanded rows in uncontrolled mode.
func WithDefaultExpandedRowKeys(keys ...domain.RowKey) Option {
	return func(t *Table) {
		t.cfg.DefaultExpandedRowKeys = domain.NewKeySet(keys...)
	}
}

// WithChildrenColumnName sets the field holding nested rows.
func WithChildrenColumnName(name string) Option {
	return func(t *Table) {
		t.cfg.ChildrenColumnName = name
	}
}

// WithExpandedRowRender sets the producer of detail content.
func WithExpandedRowRender(fn domain.ExpandedRowRenderFunc) Option {
	return func(t *Table) {
		t.cfg.ExpandedRowRender = fn
	}
}

// WithExpandedRowClassName sets the class of detail pseudo-rows.
func WithExpandedRowClassName(fn domain.RowClassNameFunc) Option {
	return func(t *Table) {
		t.cfg.ExpandedRowClassName = fn
	}
}

// WithExpandIconAsCell renders the expand icon in its own cell.
func WithExpandIconAsCell(enabled bool) Option {
	return func(t *Table) {
		t.cfg.ExpandIconAsCell = enabled
	}
}

// WithExpandIconColumnIndex sets the column carrying the expand icon.
func WithExpandIconColumnIndex(index int) Option {
	return func(t *Table) {
		t.cfg.ExpandIconColumnIndex = index
	}
}

// WithIndentSize sets the indent width of one nesting level.
func WithIndentSize(size int) Option {
	return func(t *Table) {
		t.cfg.IndentSize = size
	}
}

// WithExpandRowByClick lets activation of a whole row toggle it.
func WithExpandRowByClick(enabled bool) Option {
	return func(t *Table) {
		t.cfg.ExpandRowByClick = enabled
	}
}

// WithPrefixCls sets the class prefix of rendered rows.
func WithPrefixCls(prefix string) Option {
	return func(t *Table) {
		t.cfg.PrefixCls = prefix
	}
}

// WithHooks registers the expansion callbacks.
func WithHooks(hooks domain.ExpansionHooks) Option {
	return func(t *Table) {
		t.cfg.Hooks = hooks
	}
}

// New creates a table over rows and columns.
func New(rows []domain.Row, cols []domain.Column, opts ...Option) (*Table, error) {
	t := &Table{
		rows:    rows,
		columns: columns.NewManager(cols),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.resolve == nil {
		t.resolve = domain.FieldKeyResolver(DefaultRowKey)
	}
	if t.store == nil {
		t.store = memory.NewStore()
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	if t.metrics != nil {
		t.cfg.Hooks = t.cfg.Hooks.Chain(t.metrics.Hooks())
	}
	t.cfg.Hooks = t.deferHooks(t.cfg.Hooks)
	t.cfg = t.cfg.WithDefaults()

	ctrl, err := runtime.NewController(rows, t.cfg, t.resolve, t.store, runtime.WithLogger(t.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create expansion controller: %w", err)
	}

	visibility := runtime.NewVisibilityTracker(t.store)
	details, err := runtime.NewDetailRowBuilder(t.cfg, t.columns, runtime.NewHeightTracker(t.store), visibility)
	if err != nil {
		return nil, fmt.Errorf("failed to create detail row builder: %w", err)
	}

	t.ctrl = ctrl
	t.walker = runtime.NewWalker(ctrl, t.columns, details, visibility)
	if t.metrics != nil {
		t.stopMetrics = t.metrics.Observe(t.store)
	}
	return t, nil
}

// Close releases the store subscriptions held by the table.
func (t *Table) Close() {
	if t.stopMetrics != nil {
		t.stopMetrics()
		t.stopMetrics = nil
	}
}

// Rows returns the top-level rows.
func (t *Table) Rows() []domain.Row {
	return t.rows
}

// Config returns the effective expansion configuration.
func (t *Table) Config() domain.Config {
	return t.ctrl.Config()
}

// Columns returns the column manager.
func (t *Table) Columns() *columns.Manager {
	return t.columns
}

// Store returns the view-state store.
// Subscribers registered on it directly run while the table is locked and
// must not call back into the table; use Table.Subscribe instead.
func (t *Table) Store() ports.ViewStateStore {
	return t.store
}

// Controlled reports whether the expanded set is owned by the caller.
func (t *Table) Controlled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ctrl.Controlled()
}

// ExpandedRowKeys returns the current expanded set.
func (t *Table) ExpandedRowKeys() domain.KeySet {
	return t.ctrl.ExpandedRowKeys()
}

// IsExpanded reports whether record at index is expanded.
func (t *Table) IsExpanded(record domain.Row, index int) bool {
	return t.ctrl.IsExpanded(record, index)
}

// Toggle requests record at index to become expanded or collapsed.
// See runtime.Controller.Toggle for the exact semantics.
func (t *Table) Toggle(expanded bool, record domain.Row, index int, ev domain.InputEvent) bool {
	var changed bool
	t.update(func() {
		changed = t.ctrl.Toggle(expanded, record, index, ev)
	})
	return changed
}

// ToggleKey flips the row resolving to key and returns the requested state.
func (t *Table) ToggleKey(key domain.RowKey, ev domain.InputEvent) (bool, error) {
	var expanded bool
	err := t.updateKey(key, func(record domain.Row, index int) {
		expanded = !t.ctrl.IsExpanded(record, index)
		t.ctrl.Toggle(expanded, record, index, ev)
	})
	return expanded, err
}

// ExpandKey requests the row resolving to key to expand.
// The result reports whether the expanded set changed.
func (t *Table) ExpandKey(key domain.RowKey, ev domain.InputEvent) (bool, error) {
	return t.setKey(key, true, ev)
}

// CollapseKey requests the row resolving to key to collapse.
func (t *Table) CollapseKey(key domain.RowKey, ev domain.InputEvent) (bool, error) {
	return t.setKey(key, false, ev)
}

func (t *Table) setKey(key domain.RowKey, expanded bool, ev domain.InputEvent) (bool, error) {
	var changed bool
	err := t.updateKey(key, func(record domain.Row, index int) {
		changed = t.ctrl.Toggle(expanded, record, index, ev)
	})
	return changed, err
}

// SetExpandedRowKeys replaces the expanded set as a controlling owner would.
// Nil keys are ignored.
func (t *Table) SetExpandedRowKeys(keys domain.KeySet) {
	t.update(func() {
		t.ctrl.OnControlledKeysChanged(keys)
	})
}

// updateKey locates key and runs fn on its record inside update.
func (t *Table) updateKey(key domain.RowKey, fn func(record domain.Row, index int)) error {
	var err error
	t.update(func() {
		record, index, ok := t.walker.Locate(t.rows, key)
		if !ok {
			err = fmt.Errorf("%w: %s", domain.ErrRowNotFound, key)
			return
		}
		fn(record, index)
	})
	return err
}

// update runs fn under the table lock, then delivers the hook calls and
// notifications fn produced.
func (t *Table) update(fn func()) {
	func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.busy.Store(true)
		defer t.busy.Store(false)
		fn()
	}()
	t.flush()
}

// enqueue schedules call for delivery outside the table lock.
// When no mutation is running it is delivered right away.
func (t *Table) enqueue(call func()) {
	t.queueMu.Lock()
	t.queue = append(t.queue, call)
	t.queueMu.Unlock()
	if !t.busy.Load() {
		t.flush()
	}
}

// flush delivers queued calls in order.
func (t *Table) flush() {
	for {
		t.queueMu.Lock()
		if len(t.queue) == 0 {
			t.queueMu.Unlock()
			return
		}
		call := t.queue[0]
		t.queue = t.queue[1:]
		t.queueMu.Unlock()
		call()
	}
}

func (t *Table) deferHooks(h domain.ExpansionHooks) domain.ExpansionHooks {
	var deferred domain.ExpansionHooks
	if h.OnExpand != nil {
		deferred.OnExpand = func(expanded bool, record domain.Row) {
			t.enqueue(func() { h.OnExpand(expanded, record) })
		}
	}
	if h.OnExpandedRowsChange != nil {
		deferred.OnExpandedRowsChange = func(keys domain.KeySet) {
			keys = keys.Clone()
			t.enqueue(func() { h.OnExpandedRowsChange(keys) })
		}
	}
	return deferred
}

// Plan computes the render plan of record.
func (t *Table) Plan(record domain.Row, index, indent int, side domain.FixedSide, parentKey domain.RowKey) domain.RenderPlan {
	return t.ctrl.ComputeRowRenderPlan(record, index, indent, side, parentKey)
}

// NeedIndentSpaced reports whether any top-level row has children.
func (t *Table) NeedIndentSpaced() bool {
	return t.walker.NeedIndentSpaced(t.rows)
}

// View returns every row description of side, hidden rows included.
func (t *Table) View(side domain.FixedSide) []domain.RowView {
	return t.walker.Rows(t.rows, side)
}

// Render sends the visible rows of side to renderer.
func (t *Table) Render(side domain.FixedSide, renderer ports.RowRenderer) error {
	return t.walker.Render(t.rows, side, renderer)
}

// Subscribe registers fn for every change of the view state.
// fn runs after the table lock is released.
func (t *Table) Subscribe(fn func(domain.ViewState)) func() {
	return t.store.Subscribe(func(state domain.ViewState) {
		t.enqueue(func() { fn(state) })
	})
}
