package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/service"
	"github.com/MKhiriev/go-event-portal/models"
)

// MyEventsModel lists the user's registrations with cancel, certificate
// download and copy-id actions.
type MyEventsModel struct {
	ctx           context.Context
	registrations service.RegistrationService
	downloadDir   string

	items      []models.RegistrationWithEvent
	idx        int
	confirm    *confirmModel
	confirmID  string
	processing string

	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewMyEventsModel(ctx context.Context, registrations service.RegistrationService, downloadDir string) *MyEventsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &MyEventsModel{
		ctx:           ctx,
		registrations: registrations,
		downloadDir:   downloadDir,
		spinner:       s,
	}
}

func (m *MyEventsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.confirm = nil
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *MyEventsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registrationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.MapError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.clamp()
		return m, nil

	case cancelResultMsg:
		m.processing = ""
		if msg.err != nil {
			m.errMsg = service.MapError(msg.err)
			return m, nil
		}
		for i := range m.items {
			if m.items[i].ID == msg.id {
				m.items[i].Status = models.RegistrationCanceled
			}
		}
		m.errMsg = ""
		m.status = app.MsgRegistrationCanceled
		return m, cmdClearStatusLater()

	case downloadResultMsg:
		m.processing = ""
		if msg.err != nil {
			m.errMsg = service.MapError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgCertificateDownloadedTo + msg.path
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading && m.processing == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			id := m.confirmID
			m.confirm = nil
			m.confirmID = ""
			m.processing = id
			return m, tea.Batch(m.spinner.Tick, m.cmdCancel(id))
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirm = nil
			m.confirmID = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigateBack
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		return m, m.Init()
	case key.Matches(keyMsg, keys.enter):
		if len(m.items) == 0 && !m.loading {
			return m, navigate(guard.EventsPath, nil)
		}
	case key.Matches(keyMsg, keys.cancel):
		item, ok := m.current()
		if !ok || m.processing != "" {
			return m, nil
		}
		if !item.Status.Cancelable() {
			m.status = "Эту запись нельзя отменить"
			return m, nil
		}
		m.confirm = &confirmModel{message: "Отменить запись на «" + eventName(item) + "»?"}
		m.confirmID = item.ID
	case key.Matches(keyMsg, keys.download):
		item, ok := m.current()
		if !ok || m.processing != "" {
			return m, nil
		}
		if !item.Status.HasCertificate() {
			m.status = "Сертификат доступен после завершения мероприятия"
			return m, nil
		}
		m.errMsg = ""
		m.processing = item.ID
		return m, tea.Batch(m.spinner.Tick, m.cmdDownload(item.ID))
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := writeClipboard(item.ID); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Номер записи скопирован в буфер обмена"
		return m, cmdClearStatusLater()
	}

	return m, nil
}

func (m *MyEventsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Синхронизация записей...\n")
	case len(m.items) == 0:
		b.WriteString("У вас пока нет записей.\nenter: перейти к мероприятиям\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			date := ""
			if item.Event != nil {
				date = item.Event.Date
			}
			line := fmt.Sprintf("%s%-32s │ %-16s │ %s", cursor, fitText(eventName(item), 32), fitText(valueOrDash(date), 16), statusLabel(item.Status))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		if item, ok := m.current(); ok {
			b.WriteString("\nЗапись: ")
			b.WriteString(item.ID)
			b.WriteString("\nСоздана: ")
			b.WriteString(valueOrDash(item.CreatedAt))
			if item.CheckIn != nil {
				b.WriteString("\nОтметка: ")
				b.WriteString(valueOrDash(*item.CheckIn))
			}
			if item.Event != nil {
				b.WriteString("\nМесто: ")
				b.WriteString(valueOrDash(item.Event.Location))
			}
			b.WriteString("\n")
		}
	}

	if m.processing != "" {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Обработка...\n")
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("МОИ МЕРОПРИЯТИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ ↑/↓: навигация │ x: отменить │ d: сертификат │ c: копировать номер │ r: обновить")
}

func (m *MyEventsModel) current() (models.RegistrationWithEvent, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.RegistrationWithEvent{}, false
	}
	return m.items[m.idx], true
}

func (m *MyEventsModel) clamp() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *MyEventsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	registrations := m.registrations

	return func() tea.Msg {
		items, err := registrations.Mine(ctx)
		return registrationsLoadedMsg{items: items, err: err}
	}
}

func (m *MyEventsModel) cmdCancel(id string) tea.Cmd {
	ctx := m.ctx
	registrations := m.registrations

	return func() tea.Msg {
		return cancelResultMsg{id: id, err: registrations.Cancel(ctx, id)}
	}
}

func (m *MyEventsModel) cmdDownload(id string) tea.Cmd {
	return cmdDownloadCertificate(m.ctx, m.registrations, id, m.downloadDir, guard.MyEventsPath)
}

func cmdDownloadCertificate(ctx context.Context, registrations service.RegistrationService, id, dir, from string) tea.Cmd {
	return func() tea.Msg {
		path, err := registrations.DownloadCertificate(ctx, id, dir)
		return downloadResultMsg{from: from, path: path, err: err}
	}
}

func eventName(item models.RegistrationWithEvent) string {
	if item.Event == nil || item.Event.Name == "" {
		return "Мероприятие не найдено"
	}
	return item.Event.Name
}

func statusLabel(status models.RegistrationStatus) string {
	switch status {
	case models.RegistrationConfirmed:
		return "Подтверждено"
	case models.RegistrationPending:
		return "Ожидает"
	case models.RegistrationCheckedIn:
		return "Присутствие отмечено"
	case models.RegistrationCompleted:
		return "Завершено"
	case models.RegistrationCanceled:
		return "Отменено"
	case models.RegistrationAbsent:
		return "Отсутствовал"
	default:
		return string(status)
	}
}
