package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/promoops/campaigner/internal/store"
)

// MockStore is an in-memory store.Store for tests.
type MockStore struct {
	mu      sync.Mutex
	byItem  map[string]store.Record
	byBoard map[string][]store.Record

	// PutErr, when set, is returned by PutCampaign.
	PutErr error
}

var _ store.Store = (*MockStore)(nil)

// NewMockStore creates an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		byItem:  make(map[string]store.Record),
		byBoard: make(map[string][]store.Record),
	}
}

// Puts returns how many records were stored.
func (m *MockStore) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, recs := range m.byBoard {
		n += len(recs)
	}
	return n
}

func (m *MockStore) PutCampaign(_ context.Context, rec store.Record) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byItem[rec.ItemID] = rec
	m.byBoard[rec.BoardID] = append(m.byBoard[rec.BoardID], rec)
	return nil
}

func (m *MockStore) GetCampaign(_ context.Context, itemID string) (*store.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.byItem[itemID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &rec, nil
}

func (m *MockStore) ListCampaigns(_ context.Context, boardID string, limit int) ([]store.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := append([]store.Record(nil), m.byBoard[boardID]...)
	sort.Slice(records, func(i, j int) bool { return records[i].RunID > records[j].RunID })
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (m *MockStore) Start(context.Context) error { return nil }
func (m *MockStore) Stop(context.Context) error  { return nil }
func (m *MockStore) Ping(context.Context) error  { return nil }
