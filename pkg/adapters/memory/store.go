package memory

import (
	"log/slog"
	"sync"

	"github.com/aretw0/rowexpand/pkg/domain"
)

// Store implements ports.ViewStateStore in memory.
// Safe for concurrent use.
type Store struct {
	state  domain.ViewState
	subs   map[uint64]func(domain.ViewState)
	nextID uint64
	logger *slog.Logger
	mu     sync.RWMutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to trace writes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a new in-memory store with an empty state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state: domain.ViewState{
			ExpandedRowKeys:    domain.KeySet{},
			ExpandedRowsHeight: domain.HeightMap{},
		},
		subs: make(map[uint64]func(domain.ViewState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetState returns a copy so callers can't mutate store state directly.
func (s *Store) GetState() domain.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Snapshot()
}

// SetState replaces the fields present in patch and notifies subscribers.
// Subscribers run after the lock is released, so they may read the store.
func (s *Store) SetState(patch domain.StatePatch) {
	s.mu.Lock()
	s.state = patch.Apply(s.state)
	snapshot := s.state.Snapshot()
	subs := make([]func(domain.ViewState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("view state updated",
			"expanded_row_keys", snapshot.ExpandedRowKeys.Strings(),
			"heights", len(snapshot.ExpandedRowsHeight),
		)
	}

	for _, fn := range subs {
		fn(snapshot.Snapshot())
	}
}

// Subscribe registers fn for future writes.
func (s *Store) Subscribe(fn func(domain.ViewState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
