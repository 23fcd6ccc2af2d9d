// Package store persists assembled campaigns. Backends share one
// Record shape; the importer only sees the Store interface.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/promoops/campaigner/pkg/types"
)

// ErrNotFound is returned when no record exists for the given item.
var ErrNotFound = errors.New("campaign record not found")

// Record is one persisted import run.
type Record struct {
	RunID      string                  `json:"runId"`
	BoardID    string                  `json:"boardId"`
	ItemID     string                  `json:"itemId"`
	ImportedAt time.Time               `json:"importedAt"`
	Campaign   types.AssembledCampaign `json:"campaign"`
}

// Store is the campaign persistence interface.
type Store interface {
	// PutCampaign persists rec, replacing any previous run for the
	// same item.
	PutCampaign(ctx context.Context, rec Record) error
	// GetCampaign returns the latest record for itemID, or ErrNotFound.
	GetCampaign(ctx context.Context, itemID string) (*Record, error)
	// ListCampaigns returns up to limit records for a board, newest
	// first.
	ListCampaigns(ctx context.Context, boardID string, limit int) ([]Record, error)

	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Ping(ctx context.Context) error
}

// New builds the store named by cfg.Store.
func New(cfg *types.ProjectConfig) (Store, error) {
	switch cfg.Store {
	case types.StoreDynamoDB:
		if cfg.DynamoDB == nil {
			return nil, fmt.Errorf("store type %q requires a dynamodb section", cfg.Store)
		}
		return NewDynamoDB(cfg.DynamoDB)
	case types.StoreS3:
		if cfg.S3 == nil {
			return nil, fmt.Errorf("store type %q requires an s3 section", cfg.Store)
		}
		return NewS3(cfg.S3)
	case types.StoreFile:
		if cfg.File == nil {
			return nil, fmt.Errorf("store type %q requires a file section", cfg.Store)
		}
		return NewFile(cfg.File.Dir), nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Store)
	}
}
