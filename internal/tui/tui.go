package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/MKhiriev/go-med-reminder/models"
	tea "github.com/charmbracelet/bubbletea"
)

const notificationBuffer = 8

// NotificationSource fans out delivered reminders to listeners.
type NotificationSource interface {
	Subscribe(buffer int) (<-chan models.Notification, func())
}

type TUI struct {
	services  *service.ClientServices
	notes     NotificationSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

func New(services *service.ClientServices, notes NotificationSource, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{
		services:  services,
		notes:     notes,
		buildInfo: buildInfo,
		logger:    log,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// LoginFlow runs the menu, login, registration and reset pages until a user
// logs in, and returns that user's email.
func (t *TUI) LoginFlow(ctx context.Context) (email string, err error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.Session),
		pageRegister: NewRegisterModel(ctx, t.services.Session),
		pageReset:    NewResetPasswordModel(ctx, t.services.Session),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, t.programOptions(ctx)...).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser || result.resultEmail == "" {
		return "", ErrUserQuit
	}

	t.logger.Info().Str("func", "TUI.LoginFlow").Str("email", result.resultEmail).Msg("login flow finished")
	return result.resultEmail, nil
}

// MainLoop runs the home screen of the logged-in user. It reports whether the
// user asked to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var notes <-chan models.Notification
	if t.notes != nil {
		var unsubscribe func()
		notes, unsubscribe = t.notes.Subscribe(notificationBuffer)
		defer unsubscribe()
	}

	model := newMainLoopModel(ctx, t.services, notes)
	finalModel, runErr := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
}
