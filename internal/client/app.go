package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/MKhiriev/go-med-reminder/internal/tui"
	"github.com/MKhiriev/go-med-reminder/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.New(services.Rearm),
		logger:   log,
	}, nil
}

// Run alternates the login flow and the main loop until the user quits.
func (a *App) Run(ctx context.Context) error {
	for {
		email, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.runSession(ctx, email)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}

// runSession serves one logged-in user. The session is always ended on
// return, which also stops the live listing.
func (a *App) runSession(ctx context.Context, email string) (logout bool, err error) {
	defer a.services.Session.Logout()

	if err = a.services.List.Observe(ctx, email); err != nil {
		return false, fmt.Errorf("observe medicines: %w", err)
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "App.runSession").Str("email", email).Msg("session started")

	logout, err = a.ui.MainLoop(ctx)
	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}
