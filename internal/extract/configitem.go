package extract

import (
	"github.com/promoops/campaigner/internal/mapping"
	"github.com/promoops/campaigner/pkg/types"
)

// Configs extracts the raw configuration items. Items with
// sub-records (nested configurations) get a non-nil Fields slice; the
// nil/empty distinction is preserved for the rule engine.
func (e *Extractor) Configs(group *types.Group, segs []types.Regulation) ([]types.ConfigItem, error) {
	var out []types.ConfigItem
	for i := range group.Items {
		item := &group.Items[i]
		if err := requireCells(item); err != nil {
			return nil, err
		}

		ci := types.ConfigItem{
			Name:      item.Name,
			Round:     e.text(types.LevelConfiguration, mapping.FieldConfigRound, item),
			Type:      e.text(types.LevelConfiguration, mapping.FieldConfigType, item),
			FieldName: e.text(types.LevelConfiguration, mapping.FieldConfigField, item),
			Segments:  e.segments(types.LevelConfiguration, item, segs),
		}

		if item.Subitems != nil {
			ci.Fields = make([]types.ConfigItemField, 0, len(item.Subitems))
			for j := range item.Subitems {
				sub := &item.Subitems[j]
				ci.Fields = append(ci.Fields, types.ConfigItemField{
					Name:           sub.Name,
					Field:          e.text(types.LevelConfiguration, mapping.FieldSubField, sub).Or(""),
					Value:          e.text(types.LevelConfiguration, mapping.FieldSubValue, sub).Or(""),
					Classification: e.text(types.LevelConfiguration, mapping.FieldSubClassification, sub).Or(""),
				})
			}
		}

		out = append(out, ci)
	}
	return out, nil
}
