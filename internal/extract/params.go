package extract

import (
	"github.com/promoops/campaigner/internal/mapping"
	"github.com/promoops/campaigner/pkg/types"
)

// ThemeParams extracts the raw theme parameters from every item of the
// theme group. segs is the campaign's expanded segment list; only
// checked segments are read.
func (e *Extractor) ThemeParams(group *types.Group, segs []types.Regulation) ([]types.ThemeParameter, error) {
	var out []types.ThemeParameter
	for i := range group.Items {
		item := &group.Items[i]
		if err := requireCells(item); err != nil {
			return nil, err
		}
		out = append(out, e.themeParam(types.LevelTheme, item, segs))
	}
	return out, nil
}

// Offers extracts the raw offer items, which share the parameter shape
// and add the bonus columns.
func (e *Extractor) Offers(group *types.Group, segs []types.Regulation) ([]types.OfferItem, error) {
	var out []types.OfferItem
	for i := range group.Items {
		item := &group.Items[i]
		if err := requireCells(item); err != nil {
			return nil, err
		}
		out = append(out, types.OfferItem{
			ThemeParameter: e.themeParam(types.LevelOffer, item, segs),
			BonusField:     e.text(types.LevelOffer, mapping.FieldBonusField, item),
			BonusType:      e.text(types.LevelOffer, mapping.FieldBonusType, item),
			Fragment:       e.text(types.LevelOffer, mapping.FieldFragment, item),
		})
	}
	return out, nil
}

func (e *Extractor) themeParam(level types.ParamLevel, item *types.Item, segs []types.Regulation) types.ThemeParameter {
	return types.ThemeParameter{
		Name:      item.Name,
		ParamType: e.text(level, mapping.FieldParamType, item),
		RoundType: e.text(level, mapping.FieldRoundType, item),
		UseAsComm: e.check(level, mapping.FieldUseAsComm, item),
		Segments:  e.segments(level, item, segs),
	}
}
