package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoops/campaigner/internal/testutil"
	"github.com/promoops/campaigner/pkg/types"
)

func TestBuild_ForwardLookup(t *testing.T) {
	snap := testutil.InfraSnapshot(
		testutil.InfraItem(FieldStartDate, types.LevelCampaign, "date_1", ""),
		testutil.InfraItem(FieldStartDate, types.LevelRound, "date_9", ""),
		testutil.InfraItem("UK", types.LevelCampaign, "check_uk", KindMarket),
	)

	table, err := Build(snap)
	require.NoError(t, err)

	cid, ok := table.CID(types.LevelCampaign, FieldStartDate)
	require.True(t, ok)
	assert.Equal(t, "date_1", cid)

	// Same FFN resolves independently per level.
	cid, ok = table.CID(types.LevelRound, FieldStartDate)
	require.True(t, ok)
	assert.Equal(t, "date_9", cid)
}

func TestBuild_UnconfiguredIsNotAnError(t *testing.T) {
	table, err := Build(testutil.InfraSnapshot(
		testutil.InfraItem(FieldStartDate, types.LevelCampaign, "date_1", ""),
	))
	require.NoError(t, err)

	_, ok := table.CID(types.LevelCampaign, FieldTiers)
	assert.False(t, ok, "absent mapping signals an optional feature, not a fault")
}

func TestBuild_MarketsPreserveInsertionOrder(t *testing.T) {
	table, err := Build(testutil.InfraSnapshot(
		testutil.InfraItem("UK", types.LevelCampaign, "check_uk", KindMarket),
		testutil.InfraItem(FieldTiers, types.LevelCampaign, "text_tiers", ""),
		testutil.InfraItem("SE", types.LevelCampaign, "check_se", KindMarket),
		testutil.InfraItem("DK", types.LevelCampaign, "check_dk", KindMarket),
	))
	require.NoError(t, err)

	markets := table.Markets(types.LevelCampaign)
	require.Len(t, markets, 3)
	assert.Equal(t, "UK", markets[0].FFN)
	assert.Equal(t, "SE", markets[1].FFN)
	assert.Equal(t, "DK", markets[2].FFN)
}

func TestBuild_MalformedRecords(t *testing.T) {
	_, err := Build(testutil.InfraSnapshot(
		types.Item{Name: "Broken", Cells: []types.Cell{testutil.TextCell("column_id", "x")}},
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing level")

	_, err = Build(testutil.InfraSnapshot(
		types.Item{Name: "Broken", Cells: []types.Cell{testutil.TextCell("level", "campaign")}},
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column_id")

	_, err = Build(testutil.InfraSnapshot(
		testutil.InfraItem("X", "starship", "c1", ""),
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")
}

func TestBuild_DuplicateMapping(t *testing.T) {
	_, err := Build(testutil.InfraSnapshot(
		testutil.InfraItem(FieldTiers, types.LevelCampaign, "a", ""),
		testutil.InfraItem(FieldTiers, types.LevelCampaign, "b", ""),
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
