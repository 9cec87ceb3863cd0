package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-portal/internal/adapter"
	"github.com/MKhiriev/go-event-portal/internal/config"
	"github.com/MKhiriev/go-event-portal/internal/logger"
	"github.com/MKhiriev/go-event-portal/internal/recovery"
	"github.com/MKhiriev/go-event-portal/internal/service"
	"github.com/MKhiriev/go-event-portal/internal/session"
	"github.com/MKhiriev/go-event-portal/internal/store"
	"github.com/MKhiriev/go-event-portal/internal/tui"
	"github.com/MKhiriev/go-event-portal/models"
)

var _ Client = (*App)(nil)

// App owns every long-lived component of the client process.
type App struct {
	storages *store.ClientStorages
	session  *session.Controller
	ui       UI
	logger   *logger.Logger
}

// NewApp builds the client from cfg. Everything opened before a failing step
// is released before returning the error.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.Component("store"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, storages.Credentials, log.Component("adapter"))
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create gateway adapter: %w", err)
	}

	sess, err := session.New(ctx, gateway, storages.Credentials, log.Component("session"))
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create session: %w", err)
	}

	ui, err := tui.New(tui.Deps{
		Session:     sess,
		Registrar:   gateway,
		Recovery:    recovery.NewFlow(gateway, log.Component("recovery")),
		Services:    service.NewClientServices(gateway, gateway, sess, log),
		BuildInfo:   buildInfo,
		DownloadDir: cfg.Storage.DownloadDir,
	}, log)
	if err != nil {
		sess.Close()
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(storages, sess, ui, log), nil
}

func newApp(storages *store.ClientStorages, sess *session.Controller, ui UI, log *logger.Logger) *App {
	return &App{storages: storages, session: sess, ui: ui, logger: log}
}

// Run blocks on the UI. Quitting from the UI is a normal exit. The session
// and the storage are closed on every path.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Str("func", "App.Run").Msg("client stopped by user")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Str("func", "App.Run").Msg("client interrupted")
		return nil
	default:
		a.logger.Err(err).Str("func", "App.Run").Msg("ui terminated with error")
		return fmt.Errorf("run ui: %w", err)
	}
}

func (a *App) shutdown() {
	if a.session != nil {
		a.session.Close()
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.shutdown").Msg("failed to close storage")
	}
}
