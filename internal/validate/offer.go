package validate

import (
	"fmt"
	"strconv"

	"github.com/promoops/campaigner/pkg/types"
)

// Well-known bonus field names with dedicated shape rules.
const (
	BonusFieldExternalPlanID = "External Plan ID"
	BonusFieldWinningOffer   = "Winning Offer Type"
	BonusFieldBonusOffer     = "Bonus Offer Type"
)

// bonusFieldRule validates every segment value of one bonus field.
// Returning a message produces a violation for that segment.
type bonusFieldRule func(bonusType types.BonusType, value string) string

// bonusFieldRules is keyed by bonus field name. Fields without an
// entry accept any delimiter-free value.
var bonusFieldRules = map[string]bonusFieldRule{
	BonusFieldExternalPlanID: func(_ types.BonusType, value string) string {
		if !IsInt(value) {
			return fmt.Sprintf("external plan ID %q must be an integer", value)
		}
		return ""
	},
	BonusFieldWinningOffer: offerTypeRule,
	BonusFieldBonusOffer:   offerTypeRule,
}

// offerTypeRule: the value must be >= 0 or exactly -1, and the field
// is only legal on bonus-money and complex bonuses.
func offerTypeRule(bonusType types.BonusType, value string) string {
	if bonusType != types.BonusMoney && bonusType != types.BonusComplex {
		return fmt.Sprintf("offer type field is not allowed for %q bonuses", bonusType)
	}
	n, err := strconv.Atoi(value)
	if err != nil || (n < 0 && n != -1) {
		return fmt.Sprintf("offer type %q must be -1 or a non-negative integer", value)
	}
	return ""
}

// Offers validates every offer item in group order, aggregating
// violations across items.
func Offers(offers []types.OfferItem) types.Result[[]types.Offer] {
	var (
		errs []types.FieldError
		out  []types.Offer
	)
	for _, raw := range offers {
		o, itemErrs := offer(raw)
		if len(itemErrs) > 0 {
			errs = append(errs, itemErrs...)
			continue
		}
		out = append(out, o)
	}
	if len(errs) > 0 {
		return types.Failure[[]types.Offer](errs)
	}
	return types.Success(out)
}

func offer(raw types.OfferItem) (types.Offer, []types.FieldError) {
	param, errs := themeParam(raw.ThemeParameter)
	add := func(field, format string, args ...any) {
		errs = append(errs, types.FieldError{Entity: raw.Name, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	bonusField, fieldSet := raw.BonusField.Get()
	bonusTypeRaw, typeSet := raw.BonusType.Get()
	if fieldSet != typeSet {
		add("Bonus Type", "bonus field name and bonus type must be set together")
	}

	var bonusType types.BonusType
	fragment := 0
	if fieldSet && typeSet {
		bonusType = types.BonusType(bonusTypeRaw)
		if !validBonusType(bonusType) {
			add("Bonus Type", "unknown bonus type %q", bonusTypeRaw)
		} else {
			if rule, ok := bonusFieldRules[bonusField]; ok {
				for seg, value := range raw.Segments {
					if msg := rule(bonusType, value); msg != "" {
						add(seg, "%s", msg)
					}
				}
			}
			if bonusType.IsComplex() {
				rawFrag, ok := raw.Fragment.Get()
				if !ok {
					add("Fragment", "complex bonuses require a fragment tag")
				} else if n, valid := ParseIntInRange(rawFrag, 0, 1<<31-1); !valid {
					add("Fragment", "fragment %q must be a non-negative integer", rawFrag)
				} else {
					fragment = n
				}
			}
		}
	}

	if len(errs) > 0 {
		return types.Offer{}, errs
	}

	out := types.Offer{ThemeParam: param, Fragment: fragment}
	if fieldSet && typeSet {
		out.BonusField = bonusField
		out.BonusType = bonusType
	}
	return out, nil
}

func validBonusType(b types.BonusType) bool {
	for _, t := range types.BonusTypes {
		if t == b {
			return true
		}
	}
	return false
}
