package models

// Certificate is the public verification record of an attendance
// certificate, looked up by its authentication code.
type Certificate struct {
	AuthenticationCode string `json:"authenticationCode"`
	RegistrationID     string `json:"registrationId"`
	EventName          string `json:"eventName"`
	ParticipantName    string `json:"participantName"`
	IssuedAt           string `json:"issuedAt"`
}
