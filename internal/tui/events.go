package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/app"
	"github.com/MKhiriev/go-event-portal/internal/service"
	"github.com/MKhiriev/go-event-portal/models"
)

// EventsModel lists events with a text search and a category filter. enter
// subscribes the user to the selected event.
type EventsModel struct {
	ctx           context.Context
	events        service.EventService
	registrations service.RegistrationService

	all         []models.Event
	visible     []models.Event
	active      map[string]bool
	categories  []string
	categoryIdx int
	idx         int

	search    textinput.Model
	searching bool
	spinner   spinner.Model

	loading     bool
	subscribing string
	status      string
	errMsg      string
}

func NewEventsModel(ctx context.Context, events service.EventService, registrations service.RegistrationService) *EventsModel {
	search := textinput.New()
	search.Placeholder = "поиск по названию или описанию"
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &EventsModel{
		ctx:           ctx,
		events:        events,
		registrations: registrations,
		active:        map[string]bool{},
		categories:    []string{service.AllCategories},
		search:        search,
		spinner:       s,
	}
}

// Init reloads the list every time the screen is opened.
func (m *EventsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *EventsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.MapError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.all = msg.events
		m.active = msg.active
		if m.active == nil {
			m.active = map[string]bool{}
		}
		m.categories = m.events.Categories(m.all)
		if m.categoryIdx >= len(m.categories) {
			m.categoryIdx = 0
		}
		m.refilter()
		return m, nil

	case subscribeResultMsg:
		m.subscribing = ""
		if msg.err != nil {
			m.errMsg = service.MapError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.active[msg.eventID] = true
		m.status = app.MsgSubscribed
		return m, cmdClearStatusLater()

	case Notice:
		m.status = msg.Text
		return m, cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading && m.subscribing == "" {
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

	if m.searching {
		return m.updateSearch(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigateBack
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.tab):
		m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
		m.refilter()
	case key.Matches(keyMsg, keys.backtab):
		m.categoryIdx = (m.categoryIdx - 1 + len(m.categories)) % len(m.categories)
		m.refilter()
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		return m, m.Init()
	case key.Matches(keyMsg, keys.enter):
		return m.subscribe()
	}

	return m, nil
}

func (m *EventsModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	m.refilter()
	return m, cmd
}

func (m *EventsModel) subscribe() (tea.Model, tea.Cmd) {
	event, ok := m.current()
	if !ok {
		m.status = "Нет мероприятий"
		return m, nil
	}
	if m.active[event.ID] {
		m.status = "Вы уже записаны на это мероприятие"
		return m, nil
	}
	if m.subscribing != "" {
		m.errMsg = app.MsgRequestInProgress
		return m, nil
	}

	m.errMsg = ""
	m.subscribing = event.ID
	return m, tea.Batch(m.spinner.Tick, m.cmdSubscribe(event.ID))
}

func (m *EventsModel) View() string {
	var b strings.Builder

	b.WriteString("Поиск: [")
	b.WriteString(m.search.View())
	b.WriteString("]\n")
	b.WriteString("Категория: ")
	b.WriteString(m.categoryLabel())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка мероприятий...\n")
	case len(m.visible) == 0:
		b.WriteString("Мероприятия не найдены\n")
	default:
		for i, event := range m.visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			mark := "   "
			if m.active[event.ID] {
				mark = "[✓]"
			}
			line := fmt.Sprintf("%s%s %-32s │ %-16s │ %s", cursor, mark, fitText(event.Name, 32), fitText(valueOrDash(event.Date), 16), fitText(valueOrDash(event.Location), 24))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		if event, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(event.Name)
			b.WriteString("\n")
			b.WriteString(valueOrDash(event.Description))
			b.WriteString("\n")
			b.WriteString("Длительность: ")
			b.WriteString(valueOrDash(event.Duration))
			b.WriteString(" │ Категория: ")
			b.WriteString(valueOrDash(event.Category))
			b.WriteString("\n")
		}
	}

	if m.subscribing != "" {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Запись...\n")
	}

	writeFeedback(&b, m.status, m.errMsg)

	hotKeys := "esc: назад │ ↑/↓: навигация │ /: поиск │ tab: категория │ enter: записаться │ r: обновить"
	if m.searching {
		hotKeys = "enter/esc: закончить поиск"
	}
	return renderPage("МЕРОПРИЯТИЯ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *EventsModel) current() (models.Event, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Event{}, false
	}
	return m.visible[m.idx], true
}

func (m *EventsModel) category() string {
	if m.categoryIdx < 0 || m.categoryIdx >= len(m.categories) {
		return service.AllCategories
	}
	return m.categories[m.categoryIdx]
}

func (m *EventsModel) categoryLabel() string {
	if c := m.category(); c != service.AllCategories {
		return c
	}
	return "Все"
}

func (m *EventsModel) refilter() {
	m.visible = m.events.Filter(m.all, m.search.Value(), m.category())
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *EventsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	events := m.events
	registrations := m.registrations

	return func() tea.Msg {
		list, err := events.List(ctx)
		if err != nil {
			return eventsLoadedMsg{err: err}
		}

		active, err := registrations.ActiveEventIDs(ctx)
		if err != nil {
			return eventsLoadedMsg{err: err}
		}
		return eventsLoadedMsg{events: list, active: active}
	}
}

func (m *EventsModel) cmdSubscribe(eventID string) tea.Cmd {
	ctx := m.ctx
	events := m.events

	return func() tea.Msg {
		_, err := events.Subscribe(ctx, eventID)
		return subscribeResultMsg{eventID: eventID, err: err}
	}
}
