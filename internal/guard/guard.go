// Package guard decides whether the current session may enter a screen.
//
// Evaluation is synchronous, reads only the Authenticated flag and never
// fetches data. Redirects always replace the blocked entry so that going back
// cannot return to it.
package guard

// Region is a routing zone whose accessibility depends on the session.
type Region int

const (
	// Open screens are reachable in any session state.
	Open Region = iota
	// PublicOnly screens (login, registration) are for anonymous users.
	PublicOnly
	// Private screens require an authenticated session.
	Private
)

func (r Region) String() string {
	switch r {
	case Open:
		return "open"
	case PublicOnly:
		return "public-only"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// Decision is the result of a guard evaluation.
type Decision struct {
	Allow      bool
	RedirectTo string
	Replace    bool
}

// CanEnter evaluates region for the given session flag.
func CanEnter(region Region, authenticated bool) Decision {
	switch region {
	case Private:
		if !authenticated {
			return Decision{RedirectTo: LoginPath, Replace: true}
		}
	case PublicOnly:
		if authenticated {
			return Decision{RedirectTo: EventsPath, Replace: true}
		}
	}
	return Decision{Allow: true}
}
