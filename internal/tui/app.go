package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/models"
)

// RootModel is a TUI router:
// 1) keeps the active screen and the navigation history
// 2) sends every navigation through the access guard
// 3) re-validates the active screen on session changes
// 4) handles global Ctrl+C quit and the build info overlay
// 5) delegates all other messages to the active screen
type RootModel struct {
	ctx       context.Context
	session   Session
	navigator *guard.Navigator
	pages     map[string]tea.Model
	current   string
	logger    *logger.Logger

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers the screens by path and opens [guard.HomePath].
func NewRootModel(ctx context.Context, session Session, pages map[string]tea.Model, buildInfo models.AppBuildInfo, log *logger.Logger) RootModel {
	navigator := guard.NewNavigator()
	return RootModel{
		ctx:       ctx,
		session:   session,
		navigator: navigator,
		pages:     pages,
		current:   navigator.Current(),
		logger:    log,
		buildInfo: buildInfo,
	}
}

// Init starts the session (initial publication and profile fetch) and the
// home screen.
func (r RootModel) Init() tea.Cmd {
	ctx := r.ctx
	session := r.session
	start := func() tea.Msg {
		session.Start(ctx)
		return nil
	}

	if page := r.page(); page != nil {
		return tea.Batch(start, page.Init())
	}
	return start
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every screen.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == guard.HomePath {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		target, decision := r.navigator.Navigate(msg.Path, r.session.State().Authenticated)
		if !decision.Allow {
			r.logger.Debug().Str("func", "RootModel.Update").Str("requested", msg.Path).Str("redirect", target).Msg("navigation redirected")
		}
		return r.open(target, msg.Payload)

	case NavigateBack:
		target, _ := r.navigator.Back(r.session.State().Authenticated)
		return r.open(target, nil)

	case sessionChangedMsg:
		// a notification can lag behind the controller
		msg.state = r.session.State()
		target, decision := r.navigator.Revalidate(msg.state.Authenticated)
		var navCmd tea.Cmd
		if !decision.Allow {
			r.logger.Debug().Str("func", "RootModel.Update").Str("redirect", target).Msg("session change redirected screen")
		}
		if target != r.current {
			r, navCmd = r.open(target, nil)
		}
		return r, tea.Batch(navCmd, r.forward(r.current, msg))

	case addressedMsg:
		return r, r.forward(msg.page(), msg)
	}

	return r, r.forward(r.current, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page := r.page()
	if page == nil {
		return renderPage("EVENT PORTAL", "", "")
	}
	return page.View()
}

// Current returns the path of the active screen.
func (r RootModel) Current() string {
	return r.current
}

// History returns the navigation history, bottom first.
func (r RootModel) History() []string {
	return r.navigator.History()
}

// open activates target. Re-opening the active screen only delivers payload.
func (r RootModel) open(target string, payload tea.Msg) (RootModel, tea.Cmd) {
	r.showBuildInfo = false

	var cmds []tea.Cmd
	if target != r.current {
		r.current = target
		if page := r.page(); page != nil {
			cmds = append(cmds, page.Init())
		}
	}
	if payload != nil {
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

// forward delivers msg to the screen registered at path.
func (r RootModel) forward(path string, msg tea.Msg) tea.Cmd {
	page, ok := r.pages[path]
	if !ok || page == nil {
		return nil
	}
	updated, cmd := page.Update(msg)
	r.pages[path] = updated
	return cmd
}
