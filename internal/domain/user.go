package domain

import "time"

// User represents a registered user
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"-"`
}

// UserProfile is the public projection of a user as seen by an actor
type UserProfile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// NewUserProfile builds the profile of u; isSubscribed reports whether the actor follows u
func NewUserProfile(u User, isSubscribed bool) UserProfile {
	return UserProfile{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

// Actor is the user on whose behalf an operation runs.
// The zero value is the anonymous actor.
type Actor struct {
	UserID string
}

// Anonymous returns the anonymous actor
func Anonymous() Actor {
	return Actor{}
}

// ActorFor returns an authenticated actor for userID
func ActorFor(userID string) Actor {
	return Actor{UserID: userID}
}

// IsAnonymous reports whether no user is attached to the actor
func (a Actor) IsAnonymous() bool {
	return a.UserID == ""
}
