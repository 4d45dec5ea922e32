package shopping

// DefaultLocale is the collation locale used when none is configured
const DefaultLocale = "en"

// Error Messages
const (
	ErrMsgLoadCartFailed = "failed to load shopping cart"
	ErrMsgInvalidLocale  = "invalid shopping list locale"
)

// Log Messages
const (
	LogMsgListBuilt = "Shopping list built"
)
