package middleware

// HTTP Header Names
const (
	// HeaderUserID carries the authenticated user's UUID, set by the upstream gateway
	HeaderUserID = "X-User-ID"
)

// Log Messages
const (
	LogMsgMalformedUserID = "Rejected malformed user id header"
)

// Error Messages
const (
	ErrMsgMalformedUserID = "Malformed user identity"
)
