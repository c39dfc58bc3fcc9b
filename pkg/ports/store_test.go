package ports_test

import (
	"testing"

	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/aretw0/rowexpand/pkg/ports"
)

// MockStore is a minimal single-goroutine ViewStateStore for testing purposes.
type MockStore struct {
	data  domain.ViewState
	subs  map[int]func(domain.ViewState)
	next  int
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: domain.ViewState{
			ExpandedRowKeys:    domain.KeySet{},
			ExpandedRowsHeight: domain.HeightMap{},
		},
		subs: make(map[int]func(domain.ViewState)),
	}
}

func (m *MockStore) GetState() domain.ViewState {
	return m.data.Snapshot()
}

func (m *MockStore) SetState(patch domain.StatePatch) {
	m.data = patch.Apply(m.data)
	for _, fn := range m.subs {
		fn(m.data.Snapshot())
	}
}

func (m *MockStore) Subscribe(fn func(domain.ViewState)) func() {
	id := m.next
	m.next++
	m.subs[id] = fn
	return func() { delete(m.subs, id) }
}

func TestViewStateStore_Contract(t *testing.T) {
	// The contract is written against the interface so adapters can reuse it.
	ports.RunViewStateStoreContract(t, NewMockStore())
}
