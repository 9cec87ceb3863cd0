package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/service"
)

// ProfileModel shows the session's cached profile and edits its name and
// birth date.
type ProfileModel struct {
	ctx     context.Context
	session Session
	profile service.ProfileService

	form       form
	editing    bool
	submitting bool
	status     string
	errMsg     string
}

func NewProfileModel(ctx context.Context, session Session, profile service.ProfileService) *ProfileModel {
	return &ProfileModel{
		ctx:     ctx,
		session: session,
		profile: profile,
		form: newForm(
			formField{label: "ФИО", placeholder: "full name", charLimit: 120},
			formField{label: "Дата рождения", placeholder: "YYYY-MM-DD", charLimit: 10},
		),
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.editing = false
	m.errMsg = ""
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = service.MapError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.editing = false
		m.status = app.MsgProfileUpdated
		return m, cmdClearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			return m, m.form.update(msg)
		}
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigateBack
	case key.Matches(keyMsg, keys.edit):
		user := m.session.State().User
		if user == nil {
			m.errMsg = app.MsgProfileNotLoaded
			return m, nil
		}
		m.form.reset()
		m.form.setValue(0, user.FullName)
		m.form.setValue(1, user.BirthDate)
		m.errMsg = ""
		m.editing = true
		return m, textinput.Blink
	}
	return m, nil
}

func (m *ProfileModel) updateEditing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.editing = false
		m.errMsg = ""
		return m, nil
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
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdSave(m.form.value(0), m.form.value(1))
	}
	return m, m.form.update(keyMsg)
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	state := m.session.State()
	user := state.User

	switch {
	case m.editing:
		b.WriteString(m.form.view())
		b.WriteString("\n")
		if m.submitting {
			b.WriteString("\n[Сохранить...]\n")
		} else {
			b.WriteString("\n[Сохранить]\n")
		}
	case user == nil:
		b.WriteString("Загрузка профиля...\n")
	default:
		complete := "нет"
		if user.Complete {
			complete = "да"
		}
		rows := [][2]string{
			{"ФИО", user.FullName},
			{"E-mail", user.Email},
			{"CPF", user.NationalID},
			{"Дата рождения", user.BirthDate},
			{"Роли", strings.Join(user.Roles, ", ")},
			{"Профиль заполнен", complete},
			{"Аккаунт создан", user.CreatedAt},
		}
		for _, row := range rows {
			b.WriteString(padRight(row[0], 16))
			b.WriteString(" │ ")
			b.WriteString(valueOrDash(row[1]))
			b.WriteString("\n")
		}
	}

	writeFeedback(&b, m.status, m.errMsg)

	hotKeys := "esc: назад │ e: редактировать"
	if m.editing {
		hotKeys = "esc: отмена │ tab: след. поле │ enter: сохранить"
	}
	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProfileModel) cmdSave(fullName, birthDate string) tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		_, err := profile.Update(ctx, fullName, birthDate)
		return profileSavedMsg{err: err}
	}
}
