package user

// Error Messages
const (
	ErrMsgRegisterFailed  = "failed to register user"
	ErrMsgGetFailed       = "failed to get user"
	ErrMsgListFailed      = "failed to list users"
	ErrMsgFollowCheck     = "failed to check subscription"
	ErrMsgMissingIdentity = "email and username are required"
)

// Log Messages
const (
	LogMsgUserRegistered = "User registered"
)
