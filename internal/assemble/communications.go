package assemble

import (
	"github.com/promoops/campaigner/internal/configrule"
	"github.com/promoops/campaigner/internal/validate"
	"github.com/promoops/campaigner/pkg/types"
)

// buildCommunications groups the round's configuration items by type
// and emits each type's fixed output shape.
func buildCommunications(r types.Round, configs []types.Config) types.Communications {
	var comms types.Communications

	for _, cfg := range configs {
		if cfg.Round != r.Name {
			continue
		}
		switch cfg.Type {
		case types.ConfigEmail:
			comms.Email = mergeMessage(comms.Email, cfg, r.ScheduleHour)
		case types.ConfigSMS:
			comms.SMS = mergeMessage(comms.SMS, cfg, r.ScheduleHour)
		case types.ConfigPush:
			comms.Push = mergeMessage(comms.Push, cfg, r.ScheduleHour)
		case types.ConfigOMG:
			comms.OMG = mergeMessage(comms.OMG, cfg, r.ScheduleHour)
		case types.ConfigBanner:
			comms.Banner = mergeBanner(comms.Banner, cfg)
		case types.ConfigNeptune:
			comms.Neptune = mergeIDs(comms.Neptune, cfg)
		case types.ConfigNeptuneOptIn:
			comms.NeptuneOptIn = mergeIDs(comms.NeptuneOptIn, cfg)
		case types.ConfigRemoveNeptune:
			comms.RemoveNeptune = mergeIDs(comms.RemoveNeptune, cfg)
		case types.ConfigNeptuneBind:
			comms.NeptuneBind = mergeIDs(comms.NeptuneBind, cfg)
		case types.ConfigSegmentFilter:
			comms.SegmentFilter = mergeSegmentFilter(comms.SegmentFilter, cfg)
		case types.ConfigNeptuneConfig:
			comms.NeptuneConfigs = mergeNested(comms.NeptuneConfigs, cfg)
		case types.ConfigPromocodeConfig:
			comms.PromocodeConfigs = mergeNested(comms.PromocodeConfigs, cfg)
		case types.ConfigPacmanConfig:
			comms.PacmanConfigs = mergeNested(comms.PacmanConfigs, cfg)
		}
	}
	return comms
}

// mergeMessage folds one Email/SMS/Push/OMG row into the channel map.
// A round-level schedule hour overrides the item's own value.
func mergeMessage(out map[string]types.MessageConfig, cfg types.Config, roundHour string) map[string]types.MessageConfig {
	if out == nil {
		out = make(map[string]types.MessageConfig)
	}
	for seg, value := range cfg.Segments {
		mc := out[seg]
		switch cfg.FieldName {
		case configrule.FieldScheduleHour:
			mc.ScheduleHour = value
		case configrule.FieldTemplateID:
			mc.TemplateID = value
		}
		if roundHour != "" {
			mc.ScheduleHour = roundHour
		}
		out[seg] = mc
	}
	return out
}

func mergeBanner(out map[string]types.BannerConfig, cfg types.Config) map[string]types.BannerConfig {
	if out == nil {
		out = make(map[string]types.BannerConfig)
	}
	for seg, value := range cfg.Segments {
		bc := out[seg]
		switch cfg.FieldName {
		case configrule.FieldCasinoBannerID:
			bc.CasinoID = value
		case configrule.FieldPokerBannerID:
			bc.PokerID = value
		case configrule.FieldSportBannerID:
			bc.SportID = value
		case configrule.Field777BannerID:
			bc.ID777 = value
		case configrule.FieldBannerDuration:
			bc.Duration = value
		case configrule.FieldScheduleHour:
			bc.ScheduleHour = value
		case configrule.FieldRemoveHour:
			bc.RemoveHour = value
		case configrule.FieldLocation:
			bc.Location = value
		}
		out[seg] = bc
	}
	return out
}

func mergeIDs(out map[string]string, cfg types.Config) map[string]string {
	if out == nil {
		out = make(map[string]string, len(cfg.Segments))
	}
	for seg, value := range cfg.Segments {
		out[seg] = value
	}
	return out
}

func mergeSegmentFilter(out map[string]types.SegmentFilterConfig, cfg types.Config) map[string]types.SegmentFilterConfig {
	if out == nil {
		out = make(map[string]types.SegmentFilterConfig)
	}
	for seg, value := range cfg.Segments {
		sf := out[seg]
		switch cfg.FieldName {
		case configrule.FieldCashbackBaseSum:
			sf.CashbackBaseSum = value
		case configrule.FieldTotalBetSegment:
			// Validated upstream as exactly two bounds.
			if bounds := validate.SplitCommaList(value); len(bounds) == 2 {
				sf.TotalBetMin, sf.TotalBetMax = bounds[0], bounds[1]
			}
		}
		out[seg] = sf
	}
	return out
}

func mergeNested(out map[string][]types.ConfigItemField, cfg types.Config) map[string][]types.ConfigItemField {
	if out == nil {
		out = make(map[string][]types.ConfigItemField)
	}
	out[cfg.Name] = cfg.Fields
	return out
}
