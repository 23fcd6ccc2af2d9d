// Package board implements the external board platform collaborator:
// snapshot, item, group and asset reads over its HTTP API.
package board

import (
	"context"
	"errors"

	"github.com/promoops/campaigner/pkg/types"
)

// GroupNamePlaceholder is the sentinel value a board shows before a
// group has been chosen. Fetching a group by this name is an error.
const GroupNamePlaceholder = "Choose..."

// ErrNotFound is returned when a board, item or group does not exist.
var ErrNotFound = errors.New("board: not found")

// ErrGroupNameUnset is returned when a group is requested by the
// "not yet chosen" placeholder name.
var ErrGroupNameUnset = errors.New("board: group name not chosen")

// Source is the read interface over the board platform. The pipeline
// consumes this; the HTTP client and the test mock implement it.
type Source interface {
	GetSnapshot(ctx context.Context, boardID string) (*types.Snapshot, error)
	GetItem(ctx context.Context, itemID string) (*types.Item, error)
	GetGroup(ctx context.Context, boardID, groupName string) (*types.Group, error)
	// GetAssetURL resolves an uploaded asset to a public URL, or ""
	// when the asset does not exist.
	GetAssetURL(ctx context.Context, assetID string) (string, error)
}
