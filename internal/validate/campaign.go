package validate

import (
	"fmt"
	"time"

	"github.com/promoops/campaigner/internal/segment"
	"github.com/promoops/campaigner/pkg/types"
)

// StartWindowDays is how far in the future a campaign may start.
const StartWindowDays = 60

// Campaign validates the raw campaign fields against the business
// rules and, on success, returns the validated entity with the one-day
// start adjustment applied and the segment key-space expanded.
//
// today is supplied by the caller so the date-window check is
// reproducible.
func Campaign(fields types.CampaignFields, today time.Time) types.Result[types.Campaign] {
	var errs []types.FieldError
	entity := fields.Name
	add := func(field, format string, args ...any) {
		errs = append(errs, types.FieldError{Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if fields.Name == "" {
		add("Name", "campaign name is required")
	} else if HasForbiddenNameChars(fields.Name) {
		add("Name", "campaign name contains forbidden characters")
	}

	today = truncateDay(today)
	var start, end time.Time
	startOK := requireDate(fields.StartDate, "Start Date", &start, add)
	endOK := requireDate(fields.EndDate, "End Date", &end, add)

	if startOK {
		// The actual start is the day after the stored date.
		start = start.AddDate(0, 0, 1)
		if start.Before(today) {
			add("Start Date", "start date is in the past")
		} else if start.After(today.AddDate(0, 0, StartWindowDays)) {
			add("Start Date", "start date is more than %d days ahead", StartWindowDays)
		}
	}
	if endOK {
		end = end.AddDate(0, 0, 1)
	}
	if startOK && endOK && start.Equal(end) {
		add("End Date", "end date must differ from start date")
	}

	if len(fields.Regulations) == 0 {
		add("Regulations", "no market regulations are configured")
	} else if !anyChecked(fields.Regulations) {
		add("Regulations", "at least one market must be checked")
	}

	var tiers []string
	if fields.Tiers.Configured() {
		raw, set := fields.Tiers.Get()
		if !set {
			add("Tiers", "tier list is configured but empty")
		} else if tiers = SplitCommaList(raw); len(tiers) == 0 {
			add("Tiers", "tier list is configured but empty")
		}
	}

	abEnabled := false
	abValue := 0
	if raw, ok := fields.ABTest.Get(); ok {
		if v, valid := ParseIntInRange(raw, 10, 90); valid {
			abEnabled, abValue = true, v
		} else {
			add("AB Test", "A/B value %q must be an integer between 10 and 90", raw)
		}
	}

	var controlGroup *int
	if raw, ok := fields.ControlGroup.Get(); ok {
		if v, valid := ParseIntInRange(raw, 10, 90); valid {
			controlGroup = &v
		} else if v, valid := ParseIntInRange(raw, 0, 0); valid {
			controlGroup = &v
		} else {
			add("Control Group", "control group %q must be 0 or an integer between 10 and 90", raw)
		}
	}

	population := types.ClosedPopulation{Enabled: fields.ClosedPopulation.Or(false)}
	if population.Enabled {
		if raw, ok := fields.PopulationPlayers.Get(); ok {
			population.PlayerIDs = SplitCommaList(raw)
		}
		if len(population.PlayerIDs) == 0 {
			add("Population Players", "closed population is enabled but the player list is empty")
		}
	}

	if len(errs) > 0 {
		return types.Failure[types.Campaign](errs)
	}

	return types.Success(types.Campaign{
		Name:             fields.Name,
		StartDate:        start,
		EndDate:          end,
		OneTime:          fields.OneTime.Or(false),
		Tiers:            tiers,
		ABEnabled:        abEnabled,
		ABTest:           abValue,
		ControlGroup:     controlGroup,
		Regulations:      fields.Regulations,
		Segments:         segment.Expand(fields.Regulations, tiers, abEnabled),
		ThemeGroup:       fields.ThemeName.Or(""),
		OfferGroup:       fields.OfferName.Or(""),
		ConfigGroup:      fields.ConfigName.Or(""),
		ClosedPopulation: population,
	})
}

// requireDate branches on the tri-state: an unconfigured mapping and a
// present-but-empty cell produce different violations.
func requireDate(o types.Opt[string], field string, out *time.Time, add func(field, format string, args ...any)) bool {
	switch o.State {
	case types.FieldUnconfigured:
		add(field, "date column is not configured for this deployment")
	case types.FieldEmpty:
		add(field, "date is required")
	default:
		t, ok := ParseBoardDate(o.Value)
		if !ok {
			add(field, "date %q is not a valid YYYY-MM-DD date", o.Value)
			return false
		}
		*out = t
		return true
	}
	return false
}

func anyChecked(regs []types.Regulation) bool {
	for _, r := range regs {
		if r.Checked {
			return true
		}
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
