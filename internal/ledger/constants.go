package ledger

// Error Messages
const (
	ErrMsgAddFailed    = "failed to add recipe to list"
	ErrMsgRemoveFailed = "failed to remove recipe from list"
	ErrMsgUnknownSet   = "unknown list"
)

// Log Messages
const (
	LogMsgEntryAdded   = "Recipe added to list"
	LogMsgEntryRemoved = "Recipe removed from list"
)
