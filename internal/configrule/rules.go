package configrule

import (
	"github.com/promoops/campaigner/internal/validate"
	"github.com/promoops/campaigner/pkg/types"
)

// Field names of flat configuration items.
const (
	FieldScheduleHour = "Schedule Hour"
	FieldTemplateID   = "Template ID"

	FieldCasinoBannerID = "Casino Banner ID"
	FieldPokerBannerID  = "Poker Banner ID"
	FieldSportBannerID  = "Sport Banner ID"
	Field777BannerID    = "777 Banner ID"
	FieldBannerDuration = "Banner Duration"
	FieldRemoveHour     = "Remove Hour"
	FieldLocation       = "Location"

	FieldNeptuneID   = "Neptune ID"
	FieldNeptuneName = "Neptune Name"

	FieldCashbackBaseSum = "Cashback Base Sum"
	FieldTotalBetSegment = "Total Bet Segment"
)

var bannerLocations = []string{"Lobby", "Main", "Footer"}

// segmentCheck applies a per-segment value predicate to an item,
// reporting msg with the offending value for each violation.
func segmentCheck(c *collector, item types.ConfigItem, ok func(string) bool, msg string) {
	for seg, value := range item.Segments {
		if !ok(value) {
			c.add(item.Name, seg, "%s: %q", msg, value)
		}
	}
}

// requireFieldName resolves the item's field name against the allowed
// set for its type.
func requireFieldName(c *collector, item types.ConfigItem, allowed ...string) (string, bool) {
	name, ok := item.FieldName.Get()
	if !ok {
		c.add(item.Name, "Field Name", "field name is required")
		return "", false
	}
	if !validate.InList(name, allowed) {
		c.add(item.Name, "Field Name", "field %q is not valid for this configuration type", name)
		return "", false
	}
	return name, true
}

// messageRule validates Email/SMS/Push/OMG items: a schedule hour row
// or a template ID row.
func messageRule(c *collector, item types.ConfigItem) {
	name, ok := requireFieldName(c, item, FieldScheduleHour, FieldTemplateID)
	if !ok {
		return
	}
	switch name {
	case FieldScheduleHour:
		segmentCheck(c, item, validate.IsTimeOfDay, "schedule hour must be HH:MM")
	case FieldTemplateID:
		segmentCheck(c, item, validate.IsInt, "template ID must be an integer")
	}
}

// bannerRule validates the eight banner sub-fields.
func bannerRule(c *collector, item types.ConfigItem) {
	name, ok := requireFieldName(c, item,
		FieldCasinoBannerID, FieldPokerBannerID, FieldSportBannerID, Field777BannerID,
		FieldBannerDuration, FieldScheduleHour, FieldRemoveHour, FieldLocation)
	if !ok {
		return
	}
	switch name {
	case FieldCasinoBannerID, FieldPokerBannerID, FieldSportBannerID, Field777BannerID:
		segmentCheck(c, item, validate.IsInt, "banner ID must be an integer")
	case FieldBannerDuration:
		segmentCheck(c, item, func(v string) bool { return validate.IntInRange(v, 1, 744) }, "banner duration must be 1-744 hours")
	case FieldScheduleHour, FieldRemoveHour:
		segmentCheck(c, item, validate.IsTimeOfDay, "banner hour must be HH:MM")
	case FieldLocation:
		segmentCheck(c, item, func(v string) bool { return validate.InList(v, bannerLocations) }, "unknown banner location")
	}
}

// neptuneIDRule validates Neptune / Opt-In / Remove items, which carry
// a single GUID-shaped ID per segment.
func neptuneIDRule(c *collector, item types.ConfigItem) {
	if _, ok := requireFieldName(c, item, FieldNeptuneID); !ok {
		return
	}
	segmentCheck(c, item, validate.IsGUID, "neptune ID must be GUID-shaped")
}

// neptuneBindRule validates the per-segment bound configuration name.
// Referential integrity against Neptune Config items is a group-level
// rule, checked separately.
func neptuneBindRule(c *collector, item types.ConfigItem) {
	if _, ok := requireFieldName(c, item, FieldNeptuneName); !ok {
		return
	}
	if len(item.Segments) == 0 {
		c.add(item.Name, "", "neptune bind has no segment values")
	}
}

// segmentFilterRule validates the closed-population filter rows.
func segmentFilterRule(c *collector, item types.ConfigItem) {
	name, ok := requireFieldName(c, item, FieldCashbackBaseSum, FieldTotalBetSegment)
	if !ok {
		return
	}
	switch name {
	case FieldCashbackBaseSum:
		segmentCheck(c, item, validate.IsInt, "cashback base sum must be an integer")
	case FieldTotalBetSegment:
		segmentCheck(c, item, func(v string) bool {
			bounds, ok := validate.ParseCommaInts(v)
			return ok && len(bounds) == 2 && bounds[0] <= bounds[1]
		}, "total bet segment must be two comma-separated bounds")
	}
}
