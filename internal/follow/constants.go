package follow

// AllRecipes disables the per-author recipe limit of follow projections
const AllRecipes = -1

// Error Messages
const (
	ErrMsgFollowFailed   = "failed to follow author"
	ErrMsgUnfollowFailed = "failed to unfollow author"
	ErrMsgListFailed     = "failed to list followed authors"
	ErrMsgProjectFailed  = "failed to load author recipes"
	ErrMsgAuthorLookup   = "failed to look up author"
)

// Log Messages
const (
	LogMsgFollowed   = "Author followed"
	LogMsgUnfollowed = "Author unfollowed"
)
