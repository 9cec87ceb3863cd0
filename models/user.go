package models

// UserProfile is the identity record returned by GET /users/me.
// The client never writes it directly: the session controller owns the
// cached copy and only replaces or merges it.
type UserProfile struct {
	// ID is the server-side identifier used in /users/{id} and registrations.
	ID string `json:"id"`

	// FullName is the display name of the participant.
	FullName string `json:"fullname"`

	// Email is the login identifier.
	Email string `json:"email"`

	// NationalID is the participant's CPF.
	NationalID string `json:"cpf"`

	// BirthDate is kept as the server sends it (ISO date string).
	BirthDate string `json:"birthDate"`

	// Complete reports whether the profile has every mandatory field filled.
	Complete bool `json:"complete"`

	// Roles is the set of role names granted to the user.
	Roles []string `json:"roles"`

	// CreatedAt is the account creation timestamp as sent by the server.
	CreatedAt string `json:"createdAt"`
}

// HasRole reports whether role is present in the profile's role set.
func (u UserProfile) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserUpdatePayload is the body of PUT /users/{id}.
type UserUpdatePayload struct {
	FullName  string `json:"fullname"`
	BirthDate string `json:"birth_date"`
}
