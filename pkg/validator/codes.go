package validator

// Rule codes reported in ValidationError.Code.
const (
	CodeRequired  = "validation.required"
	CodeMinLength = "validation.min_length"
	CodePattern   = "validation.regex_pattern"
	CodeDate      = "validation.date_format"
	CodeMinAge    = "validation.min_age"
	CodeMaxAge    = "validation.max_age"
	CodeSelected  = "validation.selected"
	CodeAccepted  = "validation.accepted"
)
