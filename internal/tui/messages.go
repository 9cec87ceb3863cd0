package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/session"
	"github.com/MKhiriev/go-event-portal/models"
)

// NavigateTo asks the root model to open Path. The access guard may redirect
// to another screen. Payload, when set, is delivered to the opened screen.
type NavigateTo struct {
	Path    string
	Payload tea.Msg
}

// NavigateBack returns to the previous screen in history.
type NavigateBack struct{}

// Notice is a status line handed to a screen on navigation.
type Notice struct {
	Text string
}

type sessionChangedMsg struct {
	state session.State
}

type clearStatusMsg struct{}

// addressedMsg is an async result that belongs to the screen that started
// the command, whatever screen is current when it arrives.
type addressedMsg interface {
	tea.Msg
	page() string
}

type loginResultMsg struct {
	err error
}

type registerResultMsg struct {
	email string
	err   error
}

type recoveryResultMsg struct {
	err error
}

type eventsLoadedMsg struct {
	events []models.Event
	active map[string]bool
	err    error
}

type subscribeResultMsg struct {
	eventID string
	err     error
}

type registrationsLoadedMsg struct {
	items []models.RegistrationWithEvent
	err   error
}

type cancelResultMsg struct {
	id  string
	err error
}

type downloadResultMsg struct {
	from string
	path string
	err  error
}

type profileSavedMsg struct {
	err error
}

type certificateVerifiedMsg struct {
	certificate models.Certificate
	err         error
}

type logoutDoneMsg struct{}

func (loginResultMsg) page() string         { return guard.LoginPath }
func (registerResultMsg) page() string      { return guard.RegisterPath }
func (recoveryResultMsg) page() string      { return guard.PasswordRecoveryPath }
func (eventsLoadedMsg) page() string        { return guard.EventsPath }
func (subscribeResultMsg) page() string     { return guard.EventsPath }
func (registrationsLoadedMsg) page() string { return guard.MyEventsPath }
func (cancelResultMsg) page() string        { return guard.MyEventsPath }
func (m downloadResultMsg) page() string    { return m.from }
func (profileSavedMsg) page() string        { return guard.ProfilePath }
func (certificateVerifiedMsg) page() string { return guard.VerifyCertificatePath }
func (logoutDoneMsg) page() string          { return guard.HomePath }
