package types

import "time"

// Validated entities. These are only ever constructed by the
// validators; downstream code may rely on required fields being set.

// ClosedPopulation restricts a campaign to an explicit player list.
type ClosedPopulation struct {
	Enabled   bool     `json:"enabled"`
	PlayerIDs []string `json:"playerIds,omitempty"`
}

// Campaign is the validated campaign-level entity. StartDate and
// EndDate already carry the one-day "actual start is T+1" adjustment;
// assembly shifts them back.
type Campaign struct {
	Name             string
	StartDate        time.Time
	EndDate          time.Time
	OneTime          bool
	Tiers            []string
	ABEnabled        bool
	ABTest           int  // [10,90] when enabled
	ControlGroup     *int // nil when not configured
	Regulations      []Regulation // base markets, insertion order
	Segments         []Regulation // expanded market x tier x A/B
	ThemeGroup       string
	OfferGroup       string
	ConfigGroup      string
	ClosedPopulation ClosedPopulation
}

// CheckedSegments returns the names of the checked expanded segments,
// preserving expansion order.
func (c *Campaign) CheckedSegments() []string {
	var out []string
	for _, s := range c.Segments {
		if s.Checked {
			out = append(out, s.Name)
		}
	}
	return out
}

// Round is a validated round entity.
type Round struct {
	Name          string
	Type          RoundType
	StartDate     time.Time
	EndDate       *time.Time // nil only for one-time rounds
	OneTime       bool
	ScheduleHour  string // "" when no override
	SuppressDates bool
}

// ThemeParam is a validated theme parameter.
type ThemeParam struct {
	Name      string
	Type      ParamType
	RoundType RoundType
	UseAsComm bool
	Segments  map[string]string
}

// Offer is a validated offer entity.
type Offer struct {
	ThemeParam
	BonusField string // "" when the offer carries no bonus
	BonusType  BonusType
	Fragment   int
}

// HasBonus reports whether the offer contributes to bonus assembly.
func (o *Offer) HasBonus() bool { return o.BonusField != "" }

// Config is a validated configuration item.
type Config struct {
	Name      string
	Round     string
	Type      ConfigType
	FieldName string
	Segments  map[string]string
	Fields    []ConfigItemField // nil unless the item is nested
}

// --- Assembled output -------------------------------------------------

// DateOnly is the wire format for assembled dates.
const DateOnly = "2006-01-02"

// Details is the campaign-level section of the assembled object.
type Details struct {
	Name         string   `json:"name"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	OneTime      bool     `json:"oneTime"`
	Regulations  []string `json:"regulations"`
	Tiers        []string `json:"tiers,omitempty"`
	ABTest       int      `json:"abTest,omitempty"`
	ControlGroup *int     `json:"controlGroup,omitempty"`
}

// MessageConfig is the per-segment shape for Email/SMS/Push/OMG.
type MessageConfig struct {
	ScheduleHour string `json:"scheduleHour"`
	TemplateID   string `json:"templateId"`
}

// BannerConfig is the per-segment shape for Banner items.
type BannerConfig struct {
	CasinoID     string `json:"casinoId,omitempty"`
	PokerID      string `json:"pokerId,omitempty"`
	SportID      string `json:"sportId,omitempty"`
	ID777        string `json:"777Id,omitempty"`
	Duration     string `json:"duration,omitempty"`
	ScheduleHour string `json:"scheduleHour,omitempty"`
	RemoveHour   string `json:"removeHour,omitempty"`
	Location     string `json:"location,omitempty"`
}

// SegmentFilterConfig is the per-segment shape for Segment Filter items.
type SegmentFilterConfig struct {
	CashbackBaseSum string `json:"cashbackBaseSum,omitempty"`
	TotalBetMin     string `json:"totalBetMin,omitempty"`
	TotalBetMax     string `json:"totalBetMax,omitempty"`
}

// Communications groups the assembled configuration output of one
// round by channel. Nested config types are keyed by item name rather
// than by segment.
type Communications struct {
	Email            map[string]MessageConfig       `json:"email,omitempty"`
	SMS              map[string]MessageConfig       `json:"sms,omitempty"`
	Push             map[string]MessageConfig       `json:"push,omitempty"`
	OMG              map[string]MessageConfig       `json:"omg,omitempty"`
	Banner           map[string]BannerConfig        `json:"banner,omitempty"`
	Neptune          map[string]string              `json:"neptune,omitempty"`
	NeptuneOptIn     map[string]string              `json:"neptuneOptIn,omitempty"`
	RemoveNeptune    map[string]string              `json:"removeNeptune,omitempty"`
	NeptuneBind      map[string]string              `json:"neptuneBind,omitempty"`
	SegmentFilter    map[string]SegmentFilterConfig `json:"segmentFilter,omitempty"`
	NeptuneConfigs   map[string][]ConfigItemField   `json:"neptuneConfigs,omitempty"`
	PromocodeConfigs map[string][]ConfigItemField   `json:"promocodeConfigs,omitempty"`
	PacmanConfigs    map[string][]ConfigItemField   `json:"pacmanConfigs,omitempty"`
}

// BonusRecord is one assembled bonus group, keyed by bonus type.
type BonusRecord struct {
	Type     BonusType                         `json:"type"`
	Fragment int                               `json:"fragment,omitempty"`
	Fields   map[string]map[string]interface{} `json:"fields"` // field -> segment -> scalar or list
}

// RoundObject is one assembled round.
type RoundObject struct {
	Name           string         `json:"name"`
	Type           RoundType      `json:"type"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
	Parameters     [][]string     `json:"parameters"`
	Bonuses        []BonusRecord  `json:"bonuses,omitempty"`
	Communications Communications `json:"communications"`
}

// PromotionElement is one assembled promotion page sub-element.
type PromotionElement struct {
	Type   ConfigType        `json:"type"`
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// PromotionPage is the assembled promotion page section.
type PromotionPage struct {
	Meta     map[string]string  `json:"meta,omitempty"`
	Config   map[string]string  `json:"config,omitempty"`
	Elements []PromotionElement `json:"elements,omitempty"`
}

// AssembledCampaign is the final nested object handed to the store and
// the downstream execution system. It is created once per successful
// run and never mutated afterward.
type AssembledCampaign struct {
	Details          Details           `json:"details"`
	Rounds           []RoundObject     `json:"rounds"`
	PromotionPage    PromotionPage     `json:"promotionPage"`
	ClosedPopulation ClosedPopulation  `json:"closedPopulation"`
}
