package extract

import (
	"github.com/promoops/campaigner/internal/mapping"
	"github.com/promoops/campaigner/pkg/types"
)

// Rounds extracts the raw round fields from every item of the rounds
// group, in group order.
func (e *Extractor) Rounds(group *types.Group) ([]types.RoundFields, error) {
	var out []types.RoundFields
	for i := range group.Items {
		item := &group.Items[i]
		if err := requireCells(item); err != nil {
			return nil, err
		}
		out = append(out, types.RoundFields{
			Name:          item.Name,
			RoundType:     e.text(types.LevelRound, mapping.FieldRoundType, item),
			StartDate:     e.text(types.LevelRound, mapping.FieldStartDate, item),
			EndDate:       e.text(types.LevelRound, mapping.FieldEndDate, item),
			OneTime:       e.check(types.LevelRound, mapping.FieldOneTime, item),
			ScheduleHour:  e.text(types.LevelRound, mapping.FieldScheduleHour, item),
			SuppressDates: e.check(types.LevelRound, mapping.FieldSuppressDates, item),
		})
	}
	return out, nil
}
