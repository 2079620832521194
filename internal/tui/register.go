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

// RegisterModel is the Bubble Tea model for the registration screen: email,
// password and password confirmation. A successful registration returns to
// the menu with a notice; it never logs the user in.
type RegisterModel struct {
	ctx     context.Context
	session service.SessionService

	form       fieldForm
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, session service.SessionService) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		session: session,
		form: newFieldForm(
			fieldSpec{label: "Email"},
			fieldSpec{label: "Password", secret: true},
			fieldSpec{label: "Confirm password", secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = userMessage(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: NoticeMsg{Text: app.MsgRegisterSuccess}}
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
			return m, m.cmdRegister(strings.TrimSpace(m.form.value(0)), m.form.value(1), m.form.value(2))
		}
	}

	_, cmd := m.form.update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	writeError(&b, m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(email, password, confirm string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return RegisterResult{
			Email: email,
			Err:   session.Register(ctx, email, password, confirm),
		}
	}
}
