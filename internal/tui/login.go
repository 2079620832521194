// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders email
// and password inputs and dispatches an async login command on submission.
// On success a [LoginResult] message is produced and handled by [RootModel]
// to finish the login flow.
type LoginModel struct {
	ctx     context.Context
	session service.SessionService

	form       fieldForm
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the email field focused.
func NewLoginModel(ctx context.Context, session service.SessionService) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		session: session,
		form:    newFieldForm(fieldSpec{label: "Email"}, fieldSpec{label: "Password", secret: true}),
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]: clears submitting state and shows the error, if any.
//   - esc: navigates back to the menu.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: dispatches the async login command.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		m.errMsg = userMessage(result.Err)
		return m, nil
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
			return m, m.cmdLogin(strings.TrimSpace(m.form.value(0)), m.form.value(1))
		}
	}

	_, cmd := m.form.update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	writeError(&b, m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return LoginResult{
			Email: email,
			Err:   session.Login(ctx, email, password),
		}
	}
}
