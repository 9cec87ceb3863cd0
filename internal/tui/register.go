package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/service"
	"github.com/MKhiriev/go-event-portal/internal/validators"
	"github.com/MKhiriev/go-event-portal/models"
)

const (
	registerFullName = iota
	registerNationalID
	registerEmail
	registerBirthDate
	registerPassword
	registerRepeat
)

// RegisterModel is the Bubble Tea model for the registration screen. On
// success the form is reset and the user is sent to the login screen with a
// [Notice].
type RegisterModel struct {
	ctx       context.Context
	registrar Registrar
	validator validators.Validator

	form       form
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with six inputs; the password
// fields use masked echo.
func NewRegisterModel(ctx context.Context, registrar Registrar) *RegisterModel {
	return &RegisterModel{
		ctx:       ctx,
		registrar: registrar,
		validator: validators.NewAccountValidator(),
		form: newForm(
			formField{label: "ФИО", placeholder: "full name", charLimit: 120},
			formField{label: "CPF", placeholder: "000.000.000-00", charLimit: 14},
			formField{label: "E-mail", placeholder: "email@example.com", charLimit: 254},
			formField{label: "Дата рождения", placeholder: "YYYY-MM-DD", charLimit: 10},
			formField{label: "Пароль", placeholder: "password", charLimit: 256, secret: true},
			formField{label: "Повтор пароля", placeholder: "repeat password", charLimit: 256, secret: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [registerResultMsg] clears the submitting state; on error, populates
//     errMsg; on success, resets the form and navigates to login.
//   - esc returns to the previous screen.
//   - tab / shift+tab move focus.
//   - enter validates the inputs (account rules, passwords must match) and
//     dispatches the registration command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = service.MapError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, navigate(guard.LoginPath, Notice{Text: app.MsgRegistrationSucceeded})
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			return m, navigateBack
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			payload := models.RegisterPayload{
				FullName:   m.form.trimmed(registerFullName),
				NationalID: m.form.trimmed(registerNationalID),
				Email:      m.form.trimmed(registerEmail),
				BirthDate:  m.form.trimmed(registerBirthDate),
				Password:   m.form.value(registerPassword),
			}
			repeat := m.form.value(registerRepeat)

			if err := m.validator.Validate(m.ctx, payload); err != nil {
				m.errMsg = service.MapError(err)
				return m, nil
			}
			if payload.Password != repeat {
				m.errMsg = app.MsgPasswordMismatch
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(payload)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	writeFeedback(&b, "", m.errMsg)

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(payload models.RegisterPayload) tea.Cmd {
	ctx := m.ctx
	registrar := m.registrar

	return func() tea.Msg {
		err := registrar.Register(ctx, payload)
		return registerResultMsg{email: payload.Email, err: err}
	}
}
