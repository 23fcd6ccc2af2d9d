// Package mapping resolves friendly field names to deployment-specific
// column IDs using the Infra board snapshot.
package mapping

// The Infra board's own columns are the single hand-configured part of
// a deployment: every other column ID in the system is resolved
// through the tables built here.
const (
	infraColLevel    = "level"
	infraColColumnID = "column_id"
	infraColKind     = "kind"
)

// KindMarket marks a mapping record as a per-market regulation column.
// The set of market records is dynamic per deployment, so regulation
// columns are read through the reverse table rather than by name.
const KindMarket = "market"

// Friendly field names, constant across deployments.
const (
	// Campaign level.
	FieldStartDate         = "Start Date"
	FieldEndDate           = "End Date"
	FieldTiers             = "Tiers"
	FieldABTest            = "AB Test"
	FieldControlGroup      = "Control Group"
	FieldOneTime           = "One Time"
	FieldThemeName         = "Theme Name"
	FieldOfferName         = "Offer Name"
	FieldConfigName        = "Configuration Name"
	FieldAllMarkets        = "ALL Markets"
	FieldClosedPopulation  = "Closed Population"
	FieldPopulationPlayers = "Population Players"

	// Round level (FieldStartDate/FieldEndDate/FieldOneTime reused).
	FieldRoundType     = "Round Type"
	FieldScheduleHour  = "Schedule Hour"
	FieldSuppressDates = "Suppress Date Rows"

	// Theme and offer levels.
	FieldParamType  = "Parameter Type"
	FieldUseAsComm  = "Use As Communication"
	FieldBonusField = "Bonus Field Name"
	FieldBonusType  = "Bonus Type"
	FieldFragment   = "Fragment"

	// Configuration level.
	FieldConfigType  = "Configuration Type"
	FieldConfigRound = "Round"
	FieldConfigField = "Field Name"

	// Sub-record columns of nested configuration items.
	FieldSubField          = "Field"
	FieldSubValue          = "Value"
	FieldSubClassification = "Classification"
)
