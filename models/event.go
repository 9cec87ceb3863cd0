package models

// Event is a single entry of GET /events.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"eventName"`
	Description string `json:"description"`
	Date        string `json:"eventDate"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	Location    string `json:"eventLocal"`
}
