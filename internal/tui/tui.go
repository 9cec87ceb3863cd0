// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the event portal client.
//
// Screens are registered by the route paths of package guard. [RootModel]
// sends every navigation through the access guard and re-validates the
// active screen whenever the session controller publishes a new state, so a
// logout on a private screen lands on the login screen and a login on a
// public-only screen lands on the events list.
//
// Commands never call the session synchronously from Update: session
// notifications are delivered to the program with Send, which blocks until
// the event loop is free.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-event-portal/internal/guard"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/internal/service"
	"github.com/MKhiriev/go-event-portal/internal/session"
	"github.com/MKhiriev/go-event-portal/models"
)

var (
	ErrUserQuit          = errors.New("вышел из программы")
	ErrMissingDependency = errors.New("tui dependency is not set")
)

// Deps are the collaborators the screens use.
type Deps struct {
	Session     Session
	Registrar   Registrar
	Recovery    RecoveryFlow
	Services    *service.ClientServices
	BuildInfo   models.AppBuildInfo
	DownloadDir string
}

type TUI struct {
	deps   Deps
	logger *logger.Logger
}

func New(deps Deps, log *logger.Logger) (*TUI, error) {
	switch {
	case deps.Session == nil:
		return nil, fmt.Errorf("%w: session", ErrMissingDependency)
	case deps.Registrar == nil:
		return nil, fmt.Errorf("%w: registrar", ErrMissingDependency)
	case deps.Recovery == nil:
		return nil, fmt.Errorf("%w: recovery flow", ErrMissingDependency)
	case deps.Services == nil:
		return nil, fmt.Errorf("%w: services", ErrMissingDependency)
	}

	return &TUI{deps: deps, logger: log.Component("tui")}, nil
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.deps.Session.Subscribe(func(state session.State) {
		program.Send(sessionChangedMsg{state: state})
	})
	defer unsubscribe()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	return NewRootModel(ctx, t.deps.Session, t.pages(ctx), t.deps.BuildInfo, t.logger)
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	d := t.deps
	return map[string]tea.Model{
		guard.HomePath:              NewHomeModel(ctx, d.Session),
		guard.LoginPath:             NewLoginModel(ctx, d.Session),
		guard.RegisterPath:          NewRegisterModel(ctx, d.Registrar),
		guard.PasswordRecoveryPath:  NewRecoveryModel(ctx, d.Recovery),
		guard.EventsPath:            NewEventsModel(ctx, d.Services.Events, d.Services.Registrations),
		guard.ProfilePath:           NewProfileModel(ctx, d.Session, d.Services.Profile),
		guard.MyEventsPath:          NewMyEventsModel(ctx, d.Services.Registrations, d.DownloadDir),
		guard.VerifyCertificatePath: NewVerifyCertificateModel(ctx, d.Services.Certificates, d.Services.Registrations, d.DownloadDir),
	}
}
