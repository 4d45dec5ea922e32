package validation

const (
	ErrMsgLoadSchema             = "failed to load schema"
	ErrMsgParseSchema            = "failed to parse schema JSON"
	ErrMsgParseData              = "failed to parse JSON data"
	ErrMsgValidation             = "validation error"
	ErrMsgSchemaValidationFailed = "schema validation failed"
)
