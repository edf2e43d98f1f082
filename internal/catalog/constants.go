package catalog

// ItemsSchemaName identifies the embedded catalog schema
const ItemsSchemaName = "items.schema.json"

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog: %w"
	ErrMsgSchemaParseFailed    = "failed to parse catalog schema: %w"
	ErrMsgSchemaCompileFailed  = "failed to compile catalog schema: %w"
)

// Validation error messages
const (
	ErrMsgNoItemsDefined = "no items defined"

	ErrFmtNonPositiveID      = "%w: item at index %d has non-positive id"
	ErrFmtEmptyName          = "%w: item %d has empty name"
	ErrFmtNegativeWeight     = "%w: item %d has negative gacha_weight"
	ErrFmtValueWithoutEffect = "%w: item %d has effect_value but no effect"
	ErrFmtNonPositiveEffect  = "%w: item %d restores a stat but has no positive effect_value"
	ErrFmtUnknownEffect      = "%w: item %d has unknown effect_kind %q"
)
