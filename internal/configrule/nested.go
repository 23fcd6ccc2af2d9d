package configrule

import (
	"github.com/promoops/campaigner/internal/validate"
	"github.com/promoops/campaigner/pkg/types"
)

// Sub-field keys of the nested configuration types.
const (
	SubFieldPromocode = "promocode"
	SubFieldNeptuneID = "neptune_id"
	SubFieldTemplate  = "template"
)

// requiredSubFields lists the sub-field keys every item of a nested
// type must carry.
var requiredSubFields = map[types.ConfigType][]string{
	types.ConfigPromocodeConfig: {SubFieldPromocode},
	types.ConfigNeptuneConfig:   {SubFieldNeptuneID},
	types.ConfigPacmanConfig:    {SubFieldTemplate},
}

// subFieldChecks validates individual sub-field values by key.
var subFieldChecks = map[string]func(string) bool{
	SubFieldNeptuneID: validate.IsGUID,
}

// nestedRule validates Promocode/Neptune/Pacman config items: the item
// must have sub-records, each sub-field needs a key and value, keys
// obey their type rules, and (name, field) pairs are unique.
func nestedRule(c *collector, item types.ConfigItem) {
	rawType, _ := item.Type.Get()
	cfgType := types.ConfigType(rawType)

	if item.Fields == nil {
		c.add(item.Name, "", "%s requires sub-records", cfgType)
		return
	}
	if len(item.Fields) == 0 {
		c.add(item.Name, "", "%s has an empty sub-record list", cfgType)
		return
	}

	present := make(map[string]bool)
	seen := make(map[string]bool)
	for _, f := range item.Fields {
		if f.Field == "" {
			c.add(item.Name, f.Name, "sub-field key is required")
			continue
		}
		if f.Value == "" {
			c.add(item.Name, f.Field, "sub-field value is required")
		} else if check, ok := subFieldChecks[f.Field]; ok && !check(f.Value) {
			c.add(item.Name, f.Field, "sub-field value %q is malformed", f.Value)
		}

		pair := f.Name + "\x00" + f.Field
		if seen[pair] {
			c.add(item.Name, f.Field, "duplicate sub-field %q on %q", f.Field, f.Name)
		}
		seen[pair] = true
		present[f.Field] = true
	}

	for _, required := range requiredSubFields[cfgType] {
		if !present[required] {
			c.add(item.Name, required, "required sub-field %q is missing", required)
		}
	}
}
