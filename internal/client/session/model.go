package session

// Profile is the locally cached copy of the user's profile.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
}

// IsZero reports whether p is the empty profile.
func (p Profile) IsZero() bool {
	return p == Profile{}
}

// State is the persisted shape of a session.
type State struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Authenticated reports whether a credential is present.
func (s State) Authenticated() bool {
	return s.Token != ""
}
