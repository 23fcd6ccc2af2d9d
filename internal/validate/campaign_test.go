package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promoops/campaigner/pkg/types"
)

var today = time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)

func boardDate(daysFromToday int) string {
	return today.AddDate(0, 0, daysFromToday).Format(BoardDate)
}

func validCampaignFields() types.CampaignFields {
	return types.CampaignFields{
		Name:      "Spring Reload",
		StartDate: types.Set(boardDate(10)),
		EndDate:   types.Set(boardDate(40)),
		Regulations: []types.Regulation{
			{Name: "UK", Checked: true},
			{Name: "SE", Checked: false},
		},
		ThemeName:  types.Set("Spring Themes"),
		OfferName:  types.Set("Spring Offers"),
		ConfigName: types.Set("Spring Configs"),
	}
}

func TestCampaign_Valid(t *testing.T) {
	res := Campaign(validCampaignFields(), today)
	require.True(t, res.IsSuccess(), "errors: %v", res.Errors)

	c := res.Data
	assert.Equal(t, "Spring Reload", c.Name)
	// One-day adjustment applied.
	assert.Equal(t, today.AddDate(0, 0, 11).Format(BoardDate), c.StartDate.Format(BoardDate))
	assert.Equal(t, []string{"UK"}, c.CheckedSegments())
	assert.Nil(t, c.ControlGroup)
	assert.False(t, c.ABEnabled)
}

func TestCampaign_DateWindow(t *testing.T) {
	fields := validCampaignFields()
	fields.StartDate = types.Set(boardDate(59))
	res := Campaign(fields, today)
	assert.True(t, res.IsSuccess(), "start at today+59 (adjusted +60) must pass: %v", res.Errors)

	fields.StartDate = types.Set(boardDate(61))
	res = Campaign(fields, today)
	require.True(t, res.IsFailure())
	assert.Equal(t, "Start Date", res.Errors[0].Field)
}

func TestCampaign_StartEqualsEnd(t *testing.T) {
	fields := validCampaignFields()
	fields.EndDate = fields.StartDate
	res := Campaign(fields, today)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "must differ")
}

func TestCampaign_TriStateDates(t *testing.T) {
	fields := validCampaignFields()
	fields.StartDate = types.Unconfigured[string]()
	fields.EndDate = types.Empty[string]()
	res := Campaign(fields, today)
	require.True(t, res.IsFailure())
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0].Message, "not configured")
	assert.Contains(t, res.Errors[1].Message, "required")
}

func TestCampaign_Regulations(t *testing.T) {
	fields := validCampaignFields()
	fields.Regulations = nil
	res := Campaign(fields, today)
	require.True(t, res.IsFailure())

	fields.Regulations = []types.Regulation{{Name: "UK"}, {Name: "SE"}}
	res = Campaign(fields, today)
	require.True(t, res.IsFailure())
	assert.Contains(t, res.Errors[0].Message, "at least one market")
}

func TestCampaign_ControlGroup(t *testing.T) {
	for _, ok := range []string{"0", "10", "90"} {
		fields := validCampaignFields()
		fields.ControlGroup = types.Set(ok)
		res := Campaign(fields, today)
		require.True(t, res.IsSuccess(), "control group %s: %v", ok, res.Errors)
		require.NotNil(t, res.Data.ControlGroup)
	}
	for _, bad := range []string{"5", "95", "10.5", "abc"} {
		fields := validCampaignFields()
		fields.ControlGroup = types.Set(bad)
		res := Campaign(fields, today)
		assert.True(t, res.IsFailure(), "control group %s must fail", bad)
	}
}

func TestCampaign_ABTest(t *testing.T) {
	fields := validCampaignFields()
	fields.ABTest = types.Set("50")
	res := Campaign(fields, today)
	require.True(t, res.IsSuccess(), "errors: %v", res.Errors)
	assert.True(t, res.Data.ABEnabled)
	// Expansion doubled: each base segment followed by its _B variant.
	require.Len(t, res.Data.Segments, 4)
	assert.Equal(t, "UK_B", res.Data.Segments[1].Name)

	fields.ABTest = types.Set("95")
	assert.True(t, Campaign(fields, today).IsFailure())
}

func TestCampaign_TiersConfiguredButEmpty(t *testing.T) {
	fields := validCampaignFields()
	fields.Tiers = types.Empty[string]()
	res := Campaign(fields, today)
	require.True(t, res.IsFailure())
	assert.Equal(t, "Tiers", res.Errors[0].Field)
}

func TestCampaign_ClosedPopulation(t *testing.T) {
	fields := validCampaignFields()
	fields.ClosedPopulation = types.Set(true)
	fields.PopulationPlayers = types.Set("100, 200")
	res := Campaign(fields, today)
	require.True(t, res.IsSuccess(), "errors: %v", res.Errors)
	assert.Equal(t, []string{"100", "200"}, res.Data.ClosedPopulation.PlayerIDs)

	fields.PopulationPlayers = types.Empty[string]()
	assert.True(t, Campaign(fields, today).IsFailure())
}

func TestCampaign_AggregatesAllViolations(t *testing.T) {
	fields := validCampaignFields()
	fields.Name = "bad|name"
	fields.ControlGroup = types.Set("5")
	fields.ABTest = types.Set("abc")
	res := Campaign(fields, today)
	require.True(t, res.IsFailure())
	assert.Len(t, res.Errors, 3, "validation must not stop at the first violation")
}
