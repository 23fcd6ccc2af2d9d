package extract

import (
	"github.com/promoops/campaigner/internal/mapping"
	"github.com/promoops/campaigner/pkg/types"
)

// Campaign extracts the raw campaign-level fields from the campaign
// item. Market regulation columns are enumerated from the mapping
// table's market records rather than by fixed names, because their set
// is deployment-specific.
func (e *Extractor) Campaign(item *types.Item) (types.CampaignFields, error) {
	if err := requireCells(item); err != nil {
		return types.CampaignFields{}, err
	}

	fields := types.CampaignFields{
		Name:              item.Name,
		StartDate:         e.text(types.LevelCampaign, mapping.FieldStartDate, item),
		EndDate:           e.text(types.LevelCampaign, mapping.FieldEndDate, item),
		Tiers:             e.text(types.LevelCampaign, mapping.FieldTiers, item),
		ABTest:            e.text(types.LevelCampaign, mapping.FieldABTest, item),
		ControlGroup:      e.text(types.LevelCampaign, mapping.FieldControlGroup, item),
		OneTime:           e.check(types.LevelCampaign, mapping.FieldOneTime, item),
		ThemeName:         e.text(types.LevelCampaign, mapping.FieldThemeName, item),
		OfferName:         e.text(types.LevelCampaign, mapping.FieldOfferName, item),
		ConfigName:        e.text(types.LevelCampaign, mapping.FieldConfigName, item),
		AllMarkets:        e.check(types.LevelCampaign, mapping.FieldAllMarkets, item),
		ClosedPopulation:  e.check(types.LevelCampaign, mapping.FieldClosedPopulation, item),
		PopulationPlayers: e.text(types.LevelCampaign, mapping.FieldPopulationPlayers, item),
	}

	allMarkets := fields.AllMarkets.Or(false)
	for _, rec := range e.table.Markets(types.LevelCampaign) {
		checked := allMarkets
		if !checked {
			if cell, ok := item.Cell(rec.CID); ok {
				checked = cell.Checked
			}
		}
		fields.Regulations = append(fields.Regulations, types.Regulation{Name: rec.FFN, Checked: checked})
	}

	return fields, nil
}
