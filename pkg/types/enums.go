// Package types defines the public domain types for the campaign import pipeline.
package types

// ParamLevel scopes a field mapping to one of the five board record kinds.
type ParamLevel string

// ParamLevel values enumerate the mapping scopes.
const (
	LevelCampaign      ParamLevel = "campaign"
	LevelRound         ParamLevel = "round"
	LevelTheme         ParamLevel = "theme"
	LevelOffer         ParamLevel = "offer"
	LevelConfiguration ParamLevel = "configuration"
)

// RoundType classifies a campaign round.
type RoundType string

// RoundType values enumerate the supported round kinds.
const (
	RoundIntro      RoundType = "Intro"
	RoundEngagement RoundType = "Engagement"
	RoundReminder   RoundType = "Reminder"
	RoundFinal      RoundType = "Final"
)

// RoundTypes lists every valid round type, in display order.
var RoundTypes = []RoundType{RoundIntro, RoundEngagement, RoundReminder, RoundFinal}

// PromotionPageRound is the sentinel round name scoping configuration
// items to the promotion page rather than to a campaign round.
const PromotionPageRound = "Promotion Page"

// ConfigType is the discriminant of a configuration item.
type ConfigType string

// ConfigType values enumerate every supported configuration item kind.
const (
	ConfigBanner          ConfigType = "Banner"
	ConfigEmail           ConfigType = "Email"
	ConfigSMS             ConfigType = "SMS"
	ConfigOMG             ConfigType = "OMG"
	ConfigPush            ConfigType = "Push"
	ConfigNeptune         ConfigType = "Neptune"
	ConfigNeptuneOptIn    ConfigType = "Neptune Opt-In"
	ConfigRemoveNeptune   ConfigType = "Remove Neptune"
	ConfigNeptuneBind     ConfigType = "Neptune Bind"
	ConfigNeptuneConfig   ConfigType = "Neptune Config"
	ConfigPacmanConfig    ConfigType = "Pacman Config"
	ConfigPromocodeConfig ConfigType = "Promocode Config"
	ConfigSegmentFilter   ConfigType = "Segment Filter"
	ConfigPromotionMeta   ConfigType = "Promotion Meta"
	ConfigPromotionConfig ConfigType = "Promotion Config"
	ConfigPromotionImage  ConfigType = "Promotion Image"
	ConfigPromotionText   ConfigType = "Promotion Text"
	ConfigPromotionCTA    ConfigType = "Promotion CTA"
)

// ParamType classifies a theme or offer parameter's value domain.
type ParamType string

// ParamType values. The numeric-class types constrain every segment
// value to an integer in [0,99].
const (
	ParamPercent         ParamType = "Percent"
	ParamCap             ParamType = "Cap"
	ParamFinalAmount     ParamType = "Final Amount"
	ParamTimes           ParamType = "Times"
	ParamFreeAmount      ParamType = "Free Amount"
	ParamFreeSpinsAmount ParamType = "Free Spins Amount"
	ParamText            ParamType = "Text"
	ParamLink            ParamType = "Link"
)

// IsNumericClass reports whether every segment value of a parameter of
// this type must be an integer in [0,99].
func (p ParamType) IsNumericClass() bool {
	switch p {
	case ParamPercent, ParamCap, ParamFinalAmount, ParamTimes, ParamFreeAmount, ParamFreeSpinsAmount:
		return true
	}
	return false
}

// BonusType classifies an offer's bonus for grouping during assembly.
type BonusType string

// BonusType values enumerate the supported bonus kinds.
const (
	BonusCash      BonusType = "Cash"
	BonusFreeSpins BonusType = "Free Spins"
	BonusMoney     BonusType = "Bonus Money"
	BonusPlan      BonusType = "Plan"
	BonusComplex   BonusType = "Complex"
)

// BonusTypes lists every valid bonus type.
var BonusTypes = []BonusType{BonusCash, BonusFreeSpins, BonusMoney, BonusPlan, BonusComplex}

// IsComplex reports whether assembly must attach a numeric fragment tag
// to this bonus group.
func (b BonusType) IsComplex() bool { return b == BonusComplex }
