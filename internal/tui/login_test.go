package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-med-reminder/internal/app"
	"github.com/MKhiriev/go-med-reminder/internal/mock"
	"github.com/MKhiriev/go-med-reminder/internal/service"
)

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	ctx := context.Background()

	m := NewLoginModel(ctx, session)
	typeText(m, " ann@example.com ")
	m.Update(tabKey)
	typeText(m, "secret1")

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	// a second enter while submitting is ignored
	_, again := m.Update(enterKey)
	assert.Nil(t, again)

	session.EXPECT().Login(ctx, "ann@example.com", "secret1").Return(nil)
	assert.Equal(t, LoginResult{Email: "ann@example.com"}, cmd())
}

func TestLoginModel_ShowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockSessionService(ctrl))
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrInvalidCredentials})
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), app.MsgInvalidCredentials)
}

func TestLoginModel_Esc(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockSessionService(ctrl))

	_, cmd := m.Update(escKey)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}

func TestRegisterModel_SuccessReturnsToMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	ctx := context.Background()

	m := NewRegisterModel(ctx, session)
	typeText(m, "ann@example.com")
	m.Update(tabKey)
	typeText(m, "secret1")
	m.Update(tabKey)
	typeText(m, "secret1")

	session.EXPECT().Register(ctx, "ann@example.com", "secret1", "secret1").Return(nil)
	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	result := cmd()
	assert.Equal(t, RegisterResult{Email: "ann@example.com"}, result)

	_, cmd = m.Update(result)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: NoticeMsg{Text: app.MsgRegisterSuccess}}, cmd())
	assert.Empty(t, m.form.value(0), "form is cleared after success")
}

func TestRegisterModel_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewRegisterModel(context.Background(), mock.NewMockSessionService(ctrl))

	_, cmd := m.Update(RegisterResult{Email: "ann@example.com", Err: service.ErrDuplicateEmail})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), app.MsgDuplicateEmail)
}

func TestResetPasswordModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	ctx := context.Background()

	m := NewResetPasswordModel(ctx, session)
	typeText(m, "ghost@example.com")
	m.Update(tabKey)
	typeText(m, "newpass1")

	session.EXPECT().ResetPassword(ctx, "ghost@example.com", "newpass1").Return(service.ErrEmailNotFound)
	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)

	m.Update(cmd())
	assert.Contains(t, m.View(), app.MsgEmailNotFound)

	_, cmd = m.Update(ResetResult{Email: "ann@example.com"})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: NoticeMsg{Text: app.MsgResetPasswordSuccess}}, cmd())
}
