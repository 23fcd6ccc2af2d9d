package types

// Raw entities are flat records pulled straight from one item by the
// extractors, with no cross-item knowledge. Validated entities (see
// campaign.go) are produced from them only by the validators.

// CampaignFields holds the raw campaign-level field values.
type CampaignFields struct {
	Name              string
	StartDate         Opt[string]
	EndDate           Opt[string]
	Tiers             Opt[string] // comma-separated
	ABTest            Opt[string]
	ControlGroup      Opt[string]
	OneTime           Opt[bool]
	ThemeName         Opt[string]
	OfferName         Opt[string]
	ConfigName        Opt[string]
	AllMarkets        Opt[bool]
	ClosedPopulation  Opt[bool]
	PopulationPlayers Opt[string] // comma-separated player IDs
	Regulations       []Regulation
}

// RoundFields holds the raw round-level field values.
type RoundFields struct {
	Name          string
	RoundType     Opt[string]
	StartDate     Opt[string]
	EndDate       Opt[string]
	OneTime       Opt[bool]
	ScheduleHour  Opt[string] // overrides per-channel schedule hours
	SuppressDates Opt[bool]   // action flag: skip synthetic date rows
}

// ThemeParameter holds one raw theme parameter row.
type ThemeParameter struct {
	Name      string
	ParamType Opt[string]
	RoundType Opt[string]
	UseAsComm Opt[bool]
	Segments  map[string]string // segment name -> raw value, checked segments only
}

// OfferItem holds one raw offer row: a parameter plus bonus fields.
type OfferItem struct {
	ThemeParameter
	BonusField Opt[string]
	BonusType  Opt[string]
	Fragment   Opt[string] // numeric tag, complex bonus types only
}

// ConfigItemField is one sub-record of a nested configuration item.
type ConfigItemField struct {
	Name           string `json:"name"`
	Field          string `json:"field"`
	Value          string `json:"value"`
	Classification string `json:"classification,omitempty"`
}

// ConfigItem holds one raw configuration row. Fields is non-nil only
// when the source item has sub-records; nil and empty differ.
type ConfigItem struct {
	Name      string
	Round     Opt[string]
	Type      Opt[string]
	FieldName Opt[string]
	Segments  map[string]string
	Fields    []ConfigItemField
}
