package catalog

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaUnavailable    = "catalog schema unavailable: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil       = "config is nil"
	ErrMsgNoItemsDefined  = "no multiplier items defined"
	ErrFmtItemInvalid     = "%w: item '%s' field %s failed %q"
	ErrFmtDuplicateName   = "%w: '%s' (item '%s')"
	ErrFmtUndecodedFields = "%w: unknown fields %s"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)

// ==================== Suggestions ====================

// MaxSuggestions is how many "did you mean" candidates an unknown item lookup returns.
const MaxSuggestions = 3
