package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoops/campaigner/pkg/types"
)

func testRecord(runID, itemID string) Record {
	return Record{
		RunID:      runID,
		BoardID:    "board-1",
		ItemID:     itemID,
		ImportedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		Campaign: types.AssembledCampaign{
			Details: types.Details{Name: "Spring Promo", StartDate: "2026-03-10"},
		},
	}
}

func TestFileStore_PutGet(t *testing.T) {
	s := NewFile(t.TempDir())
	ctx := context.Background()
	require.NoError(t, s.Start(ctx))

	rec := testRecord("01ARZ3NDEKTSV4RRFFQ69G5FAV", "item-1")
	require.NoError(t, s.PutCampaign(ctx, rec))

	got, err := s.GetCampaign(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, rec, *got)

	_, err = s.GetCampaign(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_PutReplacesLatest(t *testing.T) {
	s := NewFile(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.PutCampaign(ctx, testRecord("01ARZ3NDEKTSV4RRFFQ69G5FA1", "item-1")))
	second := testRecord("01BRZ3NDEKTSV4RRFFQ69G5FA2", "item-1")
	second.Campaign.Details.Name = "Spring Promo v2"
	require.NoError(t, s.PutCampaign(ctx, second))

	got, err := s.GetCampaign(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "Spring Promo v2", got.Campaign.Details.Name)
}

func TestFileStore_ListNewestFirst(t *testing.T) {
	s := NewFile(t.TempDir())
	ctx := context.Background()

	// ULIDs embed the creation time, so lexicographic order is
	// chronological order.
	require.NoError(t, s.PutCampaign(ctx, testRecord("01AAAAAAAAAAAAAAAAAAAAAAA1", "item-1")))
	require.NoError(t, s.PutCampaign(ctx, testRecord("01BBBBBBBBBBBBBBBBBBBBBBB2", "item-2")))
	require.NoError(t, s.PutCampaign(ctx, testRecord("01CCCCCCCCCCCCCCCCCCCCCCC3", "item-3")))

	records, err := s.ListCampaigns(ctx, "board-1", 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "item-3", records[0].ItemID)
	assert.Equal(t, "item-2", records[1].ItemID)

	records, err = s.ListCampaigns(ctx, "other-board", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(&types.ProjectConfig{Store: "cassandra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store type")
}

func TestNew_MissingSection(t *testing.T) {
	_, err := New(&types.ProjectConfig{Store: types.StoreDynamoDB})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dynamodb section")
}
