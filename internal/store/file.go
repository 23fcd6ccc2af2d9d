package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Compile-time interface satisfaction check.
var _ Store = (*FileStore)(nil)

// FileStore keeps campaign records on the local filesystem. Intended
// for development and the CLI import command.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFile creates a filesystem-backed campaign store rooted at dir.
func NewFile(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) itemPath(itemID string) string {
	return filepath.Join(s.dir, "items", itemID+".json")
}

func (s *FileStore) runPath(boardID, runID string) string {
	return filepath.Join(s.dir, "boards", boardID, runID+".json")
}

// PutCampaign writes the truth file and the per-board run copy.
func (s *FileStore) PutCampaign(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling campaign record: %w", err)
	}
	for _, path := range []string{
		s.itemPath(rec.ItemID),
		s.runPath(rec.BoardID, rec.RunID),
	} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// GetCampaign reads the truth file for an item.
func (s *FileStore) GetCampaign(_ context.Context, itemID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.itemPath(itemID))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding campaign record: %w", err)
	}
	return &rec, nil
}

// ListCampaigns lists a board's run copies, newest first.
func (s *FileStore) ListCampaigns(_ context.Context, boardID string, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(filepath.Join(s.dir, "boards", boardID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	records := make([]Record, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dir, "boards", boardID, name))
		if err != nil {
			return nil, err
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Start ensures the root directory exists.
func (s *FileStore) Start(_ context.Context) error {
	return os.MkdirAll(s.dir, 0o755)
}

// Stop is a no-op.
func (s *FileStore) Stop(_ context.Context) error { return nil }

// Ping checks that the root directory is readable.
func (s *FileStore) Ping(_ context.Context) error {
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("file store ping failed: %w", err)
	}
	return nil
}
