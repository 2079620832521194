package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/mock"
	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/MKhiriev/go-med-reminder/internal/tui"
)

type loopResult struct {
	logout bool
	err    error
}

// scriptedUI replays login emails and main loop outcomes in order.
type scriptedUI struct {
	logins []string
	loops  []loopResult
	quit   error
}

func (u *scriptedUI) LoginFlow(context.Context) (string, error) {
	if len(u.logins) == 0 {
		if u.quit != nil {
			return "", u.quit
		}
		return "", tui.ErrUserQuit
	}
	email := u.logins[0]
	u.logins = u.logins[1:]
	return email, nil
}

func (u *scriptedUI) MainLoop(context.Context) (bool, error) {
	r := u.loops[0]
	u.loops = u.loops[1:]
	return r.logout, r.err
}

type appFixture struct {
	session *mock.MockSessionService
	list    *mock.MockListService
	rearm   *mock.MockRearmJob
}

func newTestApp(t *testing.T, ui UI) (*App, *appFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &appFixture{
		session: mock.NewMockSessionService(ctrl),
		list:    mock.NewMockListService(ctrl),
		rearm:   mock.NewMockRearmJob(ctrl),
	}
	f.rearm.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) { <-ctx.Done() }).AnyTimes()

	app, err := NewApp(&service.ClientServices{Session: f.session, List: f.list, Rearm: f.rearm}, ui, logger.Nop())
	require.NoError(t, err)
	return app, f
}

func TestApp_QuitFromMainLoop(t *testing.T) {
	ui := &scriptedUI{logins: []string{"ann@example.com"}, loops: []loopResult{{logout: false}}}
	app, f := newTestApp(t, ui)

	gomock.InOrder(
		f.list.EXPECT().Observe(gomock.Any(), "ann@example.com").Return(nil),
		f.session.EXPECT().Logout(),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Empty(t, ui.logins)
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	ui := &scriptedUI{
		logins: []string{"ann@example.com", "bob@example.com"},
		loops:  []loopResult{{logout: true}, {logout: false}},
	}
	app, f := newTestApp(t, ui)

	gomock.InOrder(
		f.list.EXPECT().Observe(gomock.Any(), "ann@example.com").Return(nil),
		f.session.EXPECT().Logout(),
		f.list.EXPECT().Observe(gomock.Any(), "bob@example.com").Return(nil),
		f.session.EXPECT().Logout(),
	)

	require.NoError(t, app.Run(context.Background()))
}

func TestApp_QuitFromLoginFlow(t *testing.T) {
	app, _ := newTestApp(t, &scriptedUI{})
	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_LoginFlowError(t *testing.T) {
	boom := errors.New("tty gone")
	app, _ := newTestApp(t, &scriptedUI{quit: boom})

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestApp_ObserveErrorEndsSession(t *testing.T) {
	ui := &scriptedUI{logins: []string{"ann@example.com"}}
	app, f := newTestApp(t, ui)

	boom := errors.New("db closed")
	f.list.EXPECT().Observe(gomock.Any(), "ann@example.com").Return(boom)
	f.session.EXPECT().Logout()

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestApp_MainLoopError(t *testing.T) {
	boom := errors.New("render failed")
	ui := &scriptedUI{logins: []string{"ann@example.com"}, loops: []loopResult{{err: boom}}}
	app, f := newTestApp(t, ui)

	f.list.EXPECT().Observe(gomock.Any(), gomock.Any()).Return(nil)
	f.session.EXPECT().Logout()

	assert.ErrorIs(t, app.Run(context.Background()), boom)
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &scriptedUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.Error(t, err)
}
