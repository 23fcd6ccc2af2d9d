// Package testutil provides shared test utilities for the campaign
// import pipeline.
package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/promoops/campaigner/internal/board"
	"github.com/promoops/campaigner/pkg/types"
)

// Compile-time interface satisfaction check.
var _ board.Source = (*MockBoard)(nil)

// MockBoard is an in-memory board.Source implementation for testing.
type MockBoard struct {
	mu        sync.Mutex
	snapshots map[string]*types.Snapshot
	items     map[string]*types.Item
	groups    map[string]*types.Group // key: boardID + "/" + title
	assets    map[string]string

	groupFetches []string
	AssetCalls   atomic.Int64
}

// NewMockBoard creates an empty mock board source.
func NewMockBoard() *MockBoard {
	return &MockBoard{
		snapshots: make(map[string]*types.Snapshot),
		items:     make(map[string]*types.Item),
		groups:    make(map[string]*types.Group),
		assets:    make(map[string]string),
	}
}

// AddSnapshot registers a board snapshot.
func (m *MockBoard) AddSnapshot(snap *types.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snap.BoardID] = snap
}

// AddItem registers a standalone item.
func (m *MockBoard) AddItem(item *types.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
}

// AddGroup registers a group under a board ID.
func (m *MockBoard) AddGroup(boardID string, group *types.Group) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[boardID+"/"+group.Title] = group
}

// AddAsset registers an asset URL.
func (m *MockBoard) AddAsset(assetID, url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[assetID] = url
}

// GroupFetches returns the group titles fetched so far, in order.
func (m *MockBoard) GroupFetches() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.groupFetches...)
}

func (m *MockBoard) GetSnapshot(_ context.Context, boardID string) (*types.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snapshots[boardID]
	if !ok {
		return nil, board.ErrNotFound
	}
	return snap, nil
}

func (m *MockBoard) GetItem(_ context.Context, itemID string) (*types.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[itemID]
	if !ok {
		return nil, board.ErrNotFound
	}
	return item, nil
}

func (m *MockBoard) GetGroup(_ context.Context, boardID, groupName string) (*types.Group, error) {
	if groupName == board.GroupNamePlaceholder {
		return nil, board.ErrGroupNameUnset
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groupFetches = append(m.groupFetches, groupName)
	group, ok := m.groups[boardID+"/"+groupName]
	if !ok {
		return nil, board.ErrNotFound
	}
	return group, nil
}

func (m *MockBoard) GetAssetURL(_ context.Context, assetID string) (string, error) {
	m.AssetCalls.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assets[assetID], nil
}
