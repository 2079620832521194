package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-med-reminder/internal/app"
	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ResetPasswordModel sets a new password for an existing email.
type ResetPasswordModel struct {
	ctx     context.Context
	session service.SessionService

	form       fieldForm
	submitting bool
	errMsg     string
}

func NewResetPasswordModel(ctx context.Context, session service.SessionService) *ResetPasswordModel {
	return &ResetPasswordModel{
		ctx:     ctx,
		session: session,
		form:    newFieldForm(fieldSpec{label: "Email"}, fieldSpec{label: "New password", secret: true}),
	}
}

func (m *ResetPasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(ResetResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = userMessage(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: NoticeMsg{Text: app.MsgResetPasswordSuccess}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			email := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			ctx, session := m.ctx, m.session
			return m, func() tea.Msg {
				return ResetResult{Email: email, Err: session.ResetPassword(ctx, email, password)}
			}
		}
	}

	_, cmd := m.form.update(msg)
	return m, cmd
}

func (m *ResetPasswordModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Change password]\n")
	}
	writeError(&b, m.errMsg)

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
