package assemble

import (
	"github.com/promoops/campaigner/internal/validate"
	"github.com/promoops/campaigner/pkg/types"
)

// scalarBonusFields are identifier-like bonus fields whose segment
// values are emitted as a single scalar. Every other bonus field is
// treated as a comma-separated list.
var scalarBonusFields = map[string]bool{
	validate.BonusFieldExternalPlanID: true,
	validate.BonusFieldWinningOffer:   true,
	validate.BonusFieldBonusOffer:     true,
}

// buildBonuses groups the round's bonus-bearing offers by bonus type.
// Group order follows the first offer of each type.
func buildBonuses(r types.Round, offers []types.Offer) []types.BonusRecord {
	index := make(map[types.BonusType]int)
	var records []types.BonusRecord

	for _, o := range offers {
		if !o.HasBonus() || o.RoundType != r.Type {
			continue
		}

		i, ok := index[o.BonusType]
		if !ok {
			i = len(records)
			index[o.BonusType] = i
			rec := types.BonusRecord{
				Type:   o.BonusType,
				Fields: make(map[string]map[string]interface{}),
			}
			if o.BonusType.IsComplex() {
				rec.Fragment = o.Fragment
			}
			records = append(records, rec)
		}

		values := make(map[string]interface{}, len(o.Segments))
		for seg, raw := range o.Segments {
			values[seg] = bonusValue(o.BonusField, raw)
		}
		records[i].Fields[o.BonusField] = values
	}
	return records
}

func bonusValue(field, raw string) interface{} {
	if scalarBonusFields[field] {
		return raw
	}
	return validate.SplitCommaList(raw)
}
