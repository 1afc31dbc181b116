package model

// SignupEvent is the user object delivered by the identity provider on signup
type SignupEvent struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Email  string `json:"email" masq:"secret"`
}

// Identifier returns the first non-empty user identifier
func (e SignupEvent) Identifier() string {
	if e.UserID != "" {
		return e.UserID
	}
	return e.ID
}

// SignupGrant is the webhook response that assigns roles to a new user
type SignupGrant struct {
	AppMetadata SignupAppMetadata `json:"app_metadata"`
}

type SignupAppMetadata struct {
	Roles []string `json:"roles"`
}
