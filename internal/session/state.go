package session

import "github.com/MKhiriev/go-event-portal/models"

// State is a snapshot of the session. User is always nil when Authenticated
// is false.
type State struct {
	Authenticated bool
	User          *models.UserProfile
}

// Loading reports the window between a transition to authenticated and the
// profile fetch resolving.
func (s State) Loading() bool {
	return s.Authenticated && s.User == nil
}

func (s State) clone() State {
	if s.User == nil {
		return s
	}
	u := *s.User
	u.Roles = append([]string(nil), s.User.Roles...)
	return State{Authenticated: s.Authenticated, User: &u}
}
