// Package configrule validates configuration items: per-item value
// shape rules keyed on the configuration type discriminant, and
// cross-item consistency rules over the whole group.
package configrule

import (
	"fmt"

	"github.com/promoops/campaigner/pkg/types"
)

// itemRule validates one configuration item of a given type. Rules
// append violations through the collector and never stop early.
type itemRule func(c *collector, item types.ConfigItem)

// rules is the closed dispatch table: one entry per configuration
// type. An item whose type has no entry is a violation.
var rules = map[types.ConfigType]itemRule{
	types.ConfigEmail:           messageRule,
	types.ConfigSMS:             messageRule,
	types.ConfigPush:            messageRule,
	types.ConfigOMG:             messageRule,
	types.ConfigBanner:          bannerRule,
	types.ConfigNeptune:         neptuneIDRule,
	types.ConfigNeptuneOptIn:    neptuneIDRule,
	types.ConfigRemoveNeptune:   neptuneIDRule,
	types.ConfigNeptuneBind:     neptuneBindRule,
	types.ConfigSegmentFilter:   segmentFilterRule,
	types.ConfigNeptuneConfig:   nestedRule,
	types.ConfigPacmanConfig:    nestedRule,
	types.ConfigPromocodeConfig: nestedRule,
	types.ConfigPromotionMeta:   promotionRule,
	types.ConfigPromotionConfig: promotionRule,
	types.ConfigPromotionImage:  promotionRule,
	types.ConfigPromotionText:   promotionRule,
	types.ConfigPromotionCTA:    promotionRule,
}

// singletonTypes may appear at most once in a config group.
var singletonTypes = []types.ConfigType{
	types.ConfigNeptuneBind,
	types.ConfigPromotionConfig,
	types.ConfigPromotionMeta,
}

// nameKeyedTypes are the nested configuration types whose assembled
// output is keyed by item name; a repeated (type, name) pair would
// clobber an entry, so it is rejected here. Flat types like Email use
// paired rows that merge by name on purpose.
var nameKeyedTypes = map[types.ConfigType]bool{
	types.ConfigNeptuneConfig:   true,
	types.ConfigPacmanConfig:    true,
	types.ConfigPromocodeConfig: true,
}

// promotionTypes live on the promotion page; assembly never attaches
// them to a campaign round.
var promotionTypes = map[types.ConfigType]bool{
	types.ConfigPromotionMeta:   true,
	types.ConfigPromotionConfig: true,
	types.ConfigPromotionImage:  true,
	types.ConfigPromotionText:   true,
	types.ConfigPromotionCTA:    true,
}

// collector aggregates violations for one validation run.
type collector struct {
	errs []types.FieldError
}

func (c *collector) add(entity, field, format string, args ...any) {
	c.errs = append(c.errs, types.FieldError{Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate checks every configuration item and the group-level
// consistency rules. roundNames are the validated round names; a
// config item must reference one of them or the promotion page round.
func Validate(items []types.ConfigItem, roundNames []string) types.Result[[]types.Config] {
	c := &collector{}
	var out []types.Config

	rounds := make(map[string]bool, len(roundNames))
	for _, n := range roundNames {
		rounds[n] = true
	}
	rounds[types.PromotionPageRound] = true

	for _, item := range items {
		cfg, ok := validateItem(c, item, rounds)
		if ok {
			out = append(out, cfg)
		}
	}

	crossValidate(c, out)

	if len(c.errs) > 0 {
		return types.Failure[[]types.Config](c.errs)
	}
	return types.Success(out)
}

func validateItem(c *collector, item types.ConfigItem, rounds map[string]bool) (types.Config, bool) {
	before := len(c.errs)

	rawType, ok := item.Type.Get()
	if !ok {
		c.add(item.Name, "Configuration Type", "configuration type is required")
		return types.Config{}, false
	}
	cfgType := types.ConfigType(rawType)
	rule, known := rules[cfgType]
	if !known {
		c.add(item.Name, "Configuration Type", "unknown configuration type %q", rawType)
		return types.Config{}, false
	}

	round, ok := item.Round.Get()
	if !ok {
		c.add(item.Name, "Round", "round is required")
	} else if !rounds[round] {
		c.add(item.Name, "Round", "round %q does not exist in this campaign", round)
	} else if promotionTypes[cfgType] && round != types.PromotionPageRound {
		c.add(item.Name, "Round", "%s items must use the %q round", cfgType, types.PromotionPageRound)
	}

	rule(c, item)

	if len(c.errs) > before {
		return types.Config{}, false
	}
	return types.Config{
		Name:      item.Name,
		Round:     round,
		Type:      cfgType,
		FieldName: item.FieldName.Or(""),
		Segments:  item.Segments,
		Fields:    item.Fields,
	}, true
}

// crossValidate applies the group-level rules: co-occurrence,
// referential integrity of neptune bindings, promotion structure,
// singletons and duplicate keys.
func crossValidate(c *collector, configs []types.Config) {
	byType := make(map[types.ConfigType][]types.Config)
	for _, cfg := range configs {
		byType[cfg.Type] = append(byType[cfg.Type], cfg)
	}

	binds := byType[types.ConfigNeptuneBind]
	neptuneConfigs := byType[types.ConfigNeptuneConfig]
	if len(binds) > 0 && len(neptuneConfigs) == 0 {
		c.add("config group", "", "Neptune Bind requires at least one Neptune Config item")
	}
	if len(neptuneConfigs) > 0 && len(binds) == 0 {
		c.add("config group", "", "Neptune Config requires a Neptune Bind item")
	}

	neptuneNames := make(map[string]bool, len(neptuneConfigs))
	for _, nc := range neptuneConfigs {
		neptuneNames[nc.Name] = true
	}
	for _, bind := range binds {
		for seg, bound := range bind.Segments {
			if !neptuneNames[bound] {
				c.add(bind.Name, seg, "missing configuration: no Neptune Config named %q", bound)
			}
		}
	}

	hasPromotionConfig := len(byType[types.ConfigPromotionConfig]) > 0
	for _, sub := range []types.ConfigType{types.ConfigPromotionImage, types.ConfigPromotionText, types.ConfigPromotionCTA} {
		for _, cfg := range byType[sub] {
			if !hasPromotionConfig {
				c.add(cfg.Name, "", "%s requires a Promotion Config item", sub)
			}
		}
	}

	for _, st := range singletonTypes {
		if len(byType[st]) > 1 {
			c.add("config group", "", "%s must appear at most once, found %d", st, len(byType[st]))
		}
	}

	seenTypeName := make(map[string]bool)
	seenKey := make(map[string]bool)
	for _, cfg := range configs {
		if nameKeyedTypes[cfg.Type] {
			tn := string(cfg.Type) + "\x00" + cfg.Name
			if seenTypeName[tn] {
				c.add(cfg.Name, "", "duplicate configuration of type %s", cfg.Type)
			}
			seenTypeName[tn] = true
		}

		if cfg.FieldName != "" {
			key := cfg.Round + "\x00" + string(cfg.Type) + "\x00" + cfg.FieldName
			if seenKey[key] {
				c.add(cfg.Name, cfg.FieldName, "duplicate %s field %q for round %q", cfg.Type, cfg.FieldName, cfg.Round)
			}
			seenKey[key] = true
		}
	}
}
