package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldVersion   = "version"
	FieldComponent = "component"

	FieldOperation = "operation"
	FieldAlias     = "alias"
	FieldRequestID = "request_id"
	FieldOutcome   = "outcome"

	FieldPath = "path"
	FieldAddr = "addr"
)
