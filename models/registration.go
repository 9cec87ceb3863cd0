package models

// RegistrationStatus is the lifecycle state of an event registration as
// reported by the registrations service.
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "PENDING"
	RegistrationConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationCheckedIn RegistrationStatus = "CHECKED_IN"
	RegistrationAbsent    RegistrationStatus = "ABSENT"
	RegistrationCompleted RegistrationStatus = "COMPLETED"
	RegistrationCanceled  RegistrationStatus = "CANCELED"
	RegistrationDeleted   RegistrationStatus = "DELETED"
)

// Active reports whether the registration still holds a seat.
func (s RegistrationStatus) Active() bool {
	switch s {
	case RegistrationCanceled, RegistrationDeleted:
		return false
	default:
		return true
	}
}

// Cancelable reports whether the participant may still cancel.
func (s RegistrationStatus) Cancelable() bool {
	return s == RegistrationPending || s == RegistrationConfirmed
}

// HasCertificate reports whether a certificate can be downloaded.
func (s RegistrationStatus) HasCertificate() bool {
	return s == RegistrationCompleted
}

// Registration is a participant's enrolment in one event.
type Registration struct {
	ID        string             `json:"id"`
	EventID   string             `json:"eventId"`
	UserID    string             `json:"userId"`
	Status    RegistrationStatus `json:"status"`
	CheckIn   *string            `json:"checkIn,omitempty"`
	CreatedAt string             `json:"createdAt"`
}

// RegistrationRequest is the body of POST /registrations.
type RegistrationRequest struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
}

// RegistrationWithEvent joins a registration with the event it refers to.
// Event is nil when the event lookup failed.
type RegistrationWithEvent struct {
	Registration
	Event *Event
}
