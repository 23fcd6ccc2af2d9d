// Package assemble turns the validated entities of one import run
// into the final nested campaign object. Apart from asset URL
// resolution for the promotion page, assembly is a pure function:
// the same inputs always produce a structurally identical object.
package assemble

import (
	"context"
	"time"

	"github.com/promoops/campaigner/pkg/types"
)

// AssetResolver resolves an uploaded asset ID to a public URL.
// Satisfied by board.Source.
type AssetResolver interface {
	GetAssetURL(ctx context.Context, assetID string) (string, error)
}

// Input carries every validated entity of one run.
type Input struct {
	Campaign types.Campaign
	Rounds   []types.Round
	Params   []types.ThemeParam
	Offers   []types.Offer
	Configs  []types.Config
}

// Build assembles the final campaign object. The only error path is
// asset resolution for file-sourced promotion fields; everything else
// was settled by the validators.
func Build(ctx context.Context, in Input, assets AssetResolver) (types.AssembledCampaign, error) {
	out := types.AssembledCampaign{
		Details:          buildDetails(&in.Campaign),
		ClosedPopulation: in.Campaign.ClosedPopulation,
	}

	segments := in.Campaign.CheckedSegments()
	for _, round := range in.Rounds {
		out.Rounds = append(out.Rounds, buildRound(&in.Campaign, round, segments, in))
	}

	page, err := buildPromotionPage(ctx, in.Configs, assets)
	if err != nil {
		return types.AssembledCampaign{}, err
	}
	out.PromotionPage = page

	return out, nil
}

// buildDetails emits the campaign-level section. Validated dates carry
// the extraction-time one-day shift, so both move back one day here.
func buildDetails(c *types.Campaign) types.Details {
	d := types.Details{
		Name:         c.Name,
		StartDate:    boardDay(c.StartDate),
		EndDate:      boardDay(c.EndDate),
		OneTime:      c.OneTime,
		Tiers:        c.Tiers,
		ControlGroup: c.ControlGroup,
	}
	if c.ABEnabled {
		d.ABTest = c.ABTest
	}
	for _, reg := range c.Regulations {
		if reg.Checked {
			d.Regulations = append(d.Regulations, reg.Name)
		}
	}
	return d
}

func buildRound(c *types.Campaign, r types.Round, segments []string, in Input) types.RoundObject {
	start := r.StartDate
	if r.Type == types.RoundIntro {
		start = c.StartDate
	}
	end := start
	if !c.OneTime && !r.OneTime && r.EndDate != nil {
		end = *r.EndDate
	}

	startDay, endDay := boardDay(start), boardDay(end)
	return types.RoundObject{
		Name:           r.Name,
		Type:           r.Type,
		StartDate:      startDay,
		EndDate:        endDay,
		Parameters:     buildParameters(r, startDay, endDay, segments, in.Params, in.Offers),
		Bonuses:        buildBonuses(r, in.Offers),
		Communications: buildCommunications(r, in.Configs),
	}
}

// boardDay formats t shifted back one day, undoing the "actual start
// is T+1" adjustment applied during extraction.
func boardDay(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(types.DateOnly)
}
