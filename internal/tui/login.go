// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	"github.com/MKhiriev/go-event-portal/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (e-mail and password) and dispatches an async login through the
// session controller. A successful login changes the session, and the root
// model's re-validation moves the user off this public-only screen.
type LoginModel struct {
	ctx     context.Context
	session Session

	form       form
	submitting bool
	status     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the e-mail field focused and the
// password field masked.
func NewLoginModel(ctx context.Context, session Session) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			formField{label: "E-mail", placeholder: "email@example.com", charLimit: 254},
			formField{label: "Пароль", placeholder: "password", charLimit: 256, secret: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginResultMsg] clears the submitting state; on error, populates errMsg.
//   - [Notice] shows a status line (e.g. after registration).
//   - esc returns to the previous screen.
//   - ctrl+r opens password recovery.
//   - tab / shift+tab move focus.
//   - enter validates the inputs and dispatches the login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = service.MapError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, navigate(guard.EventsPath, Notice{Text: app.MsgLoginSucceeded})
	case Notice:
		m.status = msg.Text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.errMsg = ""
			m.status = ""
			return m, navigateBack
		case key.Matches(keyMsg, keys.recover):
			m.errMsg = ""
			return m, navigate(guard.PasswordRecoveryPath, nil)
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

			email := m.form.trimmed(0)
			pass := m.form.value(1)
			if email == "" || pass == "" {
				m.errMsg = "E-mail и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить │ ctrl+r: забыли пароль")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		err := session.Login(ctx, models.LoginPayload{
			Email:    email,
			Password: pass,
		})
		return loginResultMsg{err: err}
	}
}
