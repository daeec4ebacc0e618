package definition

// Schema paths
const (
	ItemsSchemaPath = "configs/schemas/items.schema.json"
)

// Config file identity
const (
	ConfigFileName = "items.json"
)

// Error message constants
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoItemsDefined       = "no items defined"
	ErrFmtItemInvalid          = "%w: item %q: %v"
	ErrFmtItemAtIndexEmpty     = "%w: item at index %d has empty internal_name"
)

// Log message constants
const (
	LogMsgApplyCompleted      = "Definition apply completed"
	LogMsgUnknownMechanicType = "Unknown mechanic type, section skipped"
	LogMsgInvalidSection      = "Invalid mechanic section, item definition rejected"
	LogMsgDuplicateBinding    = "Duplicate mechanic binding rejected"
	LogMsgInvalidDefinition   = "Invalid item definition rejected"
	LogMsgAppliedEventError   = "Failed to publish definitions applied event"
)

// Prototype cache sizing
const (
	PrototypeCacheSize = 512
)
