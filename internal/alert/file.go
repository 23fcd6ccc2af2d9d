package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/promoops/campaigner/pkg/types"
)

// FileSink appends alerts as JSON lines to a local file. Writes are
// serialized so concurrent import runs never interleave lines.
type FileSink struct {
	path string
	mu   sync.Mutex
}

// NewFileSink creates a file alert sink, creating the parent
// directory and probing the file for writability up front so a bad
// path fails at startup rather than on the first alert.
func NewFileSink(path string) (*FileSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating alert directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening alert file: %w", err)
	}
	_ = f.Close()

	return &FileSink{path: path}, nil
}

// Name returns the sink identifier.
func (s *FileSink) Name() string { return "file" }

// Send appends the alert as a JSON line. A cancelled run context
// skips the write entirely so an aborted import leaves no partial
// line behind.
func (s *FileSink) Send(ctx context.Context, alert types.Alert) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("alert file sink: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return json.NewEncoder(f).Encode(alert)
}
