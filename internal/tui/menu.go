package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/guard"
)

type menuItem struct {
	title  string
	path   string
	logout bool
}

var (
	anonymousMenu = []menuItem{
		{title: "Войти", path: guard.LoginPath},
		{title: "Зарегистрироваться", path: guard.RegisterPath},
		{title: "Восстановить пароль", path: guard.PasswordRecoveryPath},
		{title: "Проверить сертификат", path: guard.VerifyCertificatePath},
	}
	authenticatedMenu = []menuItem{
		{title: "Мероприятия", path: guard.EventsPath},
		{title: "Мои мероприятия", path: guard.MyEventsPath},
		{title: "Профиль", path: guard.ProfilePath},
		{title: "Проверить сертификат", path: guard.VerifyCertificatePath},
		{title: "Выйти", logout: true},
	}
)

// HomeModel is the landing screen. Its menu depends on the session state.
type HomeModel struct {
	ctx     context.Context
	session Session

	idx        int
	status     string
	loggingOut bool
}

func NewHomeModel(ctx context.Context, session Session) *HomeModel {
	return &HomeModel{ctx: ctx, session: session}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.status = msg.Text
		return m, cmdClearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case sessionChangedMsg:
		m.clamp()
		return m, nil
	case logoutDoneMsg:
		m.loggingOut = false
		m.idx = 0
		m.status = app.MsgLoggedOut
		return m, cmdClearStatusLater()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.items()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.clamp()
		item := items[m.idx]
		if item.logout {
			if m.loggingOut {
				return m, nil
			}
			m.loggingOut = true
			return m, m.cmdLogout()
		}
		m.status = ""
		return m, navigate(item.path, nil)
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder
	items := m.items()

	state := m.session.State()
	switch {
	case state.User != nil:
		b.WriteString("Здравствуйте, ")
		b.WriteString(state.User.FullName)
		b.WriteString("!\n\n")
	case state.Loading():
		b.WriteString("Загрузка профиля...\n\n")
	default:
		b.WriteString("Найдите своё следующее мероприятие!\n\n")
	}

	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	writeFeedback(&b, m.status, "")

	return renderPage("EVENT PORTAL", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}

func (m *HomeModel) items() []menuItem {
	if m.session.State().Authenticated {
		return authenticatedMenu
	}
	return anonymousMenu
}

func (m *HomeModel) clamp() {
	if n := len(m.items()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		session.Logout()
		return logoutDoneMsg{}
	}
}
