// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-med-reminder/internal/app"
	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/MKhiriev/go-med-reminder/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTimeout = 5 * time.Second
	bannerTimeout = 30 * time.Second
	clockInterval = time.Minute
)

type loopMode int

const (
	modeList loopMode = iota
	modeFilter
	modeForm
	modeConfirm
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	owner    string
	views    <-chan []models.Medicine
	notes    <-chan models.Notification
	now      func() time.Time
	copy     func(string) error

	mode    loopMode
	items   []models.Medicine
	idx     int
	filter  textinput.Model
	form    medicineForm
	confirm confirmModel
	target  models.Medicine
	banner  *bannerModel
	status  string
	errMsg  string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, notes <-chan models.Notification) mainLoopModel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter by name"
	filter.Width = 30
	filter.SetValue(services.List.Filter())

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		owner:    services.Session.CurrentEmail(),
		views:    services.List.Views(),
		notes:    notes,
		now:      time.Now,
		copy:     clipboard.WriteAll,
		items:    services.List.View(),
		filter:   filter,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		waitForViews(m.ctx, m.views),
		waitForNotification(m.notes),
		tickClock(),
	)
}

func waitForViews(ctx context.Context, views <-chan []models.Medicine) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return viewsClosedMsg{}
		case v, ok := <-views:
			if !ok {
				return viewsClosedMsg{}
			}
			return viewsMsg(v)
		}
	}
}

func waitForNotification(notes <-chan models.Notification) tea.Cmd {
	if notes == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-notes
		if !ok {
			return notificationsClosedMsg{}
		}
		return notificationMsg(n)
	}
}

func tickClock() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case viewsMsg:
		m.items = msg
		m.clampIdx()
		return m, waitForViews(m.ctx, m.views)
	case viewsClosedMsg, notificationsClosedMsg:
		return m, nil
	case notificationMsg:
		note := models.Notification(msg)
		m.banner = &bannerModel{note: note}
		return m, tea.Batch(
			waitForNotification(m.notes),
			tea.Tick(bannerTimeout, func(time.Time) tea.Msg { return clearBannerMsg{id: note.ID} }),
		)
	case clearBannerMsg:
		if m.banner != nil && m.banner.note.ID == msg.id {
			m.banner = nil
		}
		return m, nil
	case tickMsg:
		return m, tickClock()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case loadedMsg:
		if msg.err != nil {
			m.services.Entry.Reset()
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		cmd := m.openForm()
		return m, cmd
	case savedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.errMsg = ""
		m.status = saveStatus(msg.result)
		return m, clearStatusLater()
	case deletedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Deleted " + msg.name
		return m, clearStatusLater()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.status = app.MsgCopied
		return m, clearStatusLater()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeForm {
			_, cmd := m.form.fields.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeFilter:
		return m.updateFilter(keyMsg)
	case modeForm:
		return m.updateForm(keyMsg)
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.filter):
		m.mode = modeFilter
		return m, m.filter.Focus()
	case key.Matches(msg, keys.esc):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.services.List.SetFilter("")
		}
	case key.Matches(msg, keys.dismiss):
		m.banner = nil
	case key.Matches(msg, keys.newItem):
		m.services.Entry.Reset()
		cmd := m.openForm()
		return m, cmd
	case key.Matches(msg, keys.edit):
		cur, ok := m.current()
		if !ok {
			return m, nil
		}
		m.services.Entry.Reset()
		ctx, entry := m.ctx, m.services.Entry
		return m, func() tea.Msg {
			return loadedMsg{err: entry.LoadIfEditing(ctx, cur.ID)}
		}
	case key.Matches(msg, keys.delete):
		cur, ok := m.current()
		if !ok {
			return m, nil
		}
		m.target = cur
		m.confirm = confirmModel{name: cur.Name}
		m.mode = modeConfirm
	case key.Matches(msg, keys.copy):
		cur, ok := m.current()
		if !ok {
			return m, nil
		}
		text, copyFn := reminderText(cur), m.copy
		return m, func() tea.Msg { return copiedMsg{err: copyFn(text)} }
	}
	return m, nil
}

func (m mainLoopModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.filter.SetValue("")
		m.services.List.SetFilter("")
		fallthrough
	case key.Matches(msg, keys.enter):
		m.filter.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if after := m.filter.Value(); after != before {
		m.services.List.SetFilter(after)
	}
	return m, cmd
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeList
		ctx, list, target := m.ctx, m.services.List, m.target
		return m, func() tea.Msg {
			return deletedMsg{name: target.Name, err: list.Delete(ctx, target)}
		}
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.services.Entry.Reset()
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.save),
		key.Matches(msg, keys.enter) && m.form.fields.lastFocused():
		cmd := m.submitForm()
		return m, cmd
	case key.Matches(msg, keys.enter):
		m.form.fields.setFocus(m.form.fields.focus + 1)
		return m, nil
	}

	_, cmd := m.form.fields.update(msg)
	m.form.bind(m.services.Entry)
	return m, cmd
}

func (m *mainLoopModel) submitForm() tea.Cmd {
	m.form.bind(m.services.Entry)
	m.form.errMsg = ""
	m.form.submitting = true

	ctx, entry, owner := m.ctx, m.services.Entry, m.owner
	return func() tea.Msg {
		res, err := entry.Save(ctx, owner)
		return savedMsg{result: res, err: err}
	}
}

func (m *mainLoopModel) openForm() tea.Cmd {
	entry := m.services.Entry
	m.form = newMedicineForm(entry.Draft(), entry.EditingID())
	m.errMsg = ""
	m.mode = modeForm
	return textinput.Blink
}

func (m mainLoopModel) current() (models.Medicine, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Medicine{}, false
	}
	return m.items[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) View() string {
	if m.mode == modeForm {
		if m.banner != nil {
			return m.banner.View() + "\n\n" + m.form.View()
		}
		return m.form.View()
	}

	var b strings.Builder
	if m.banner != nil {
		b.WriteString(m.banner.View())
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Due today: %d\n", m.services.List.DueToday(m.now())))
	if m.mode == modeFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case len(m.items) > 0:
		b.WriteString(renderMedicineTable(m.items, m.idx))
	case m.filter.Value() != "":
		b.WriteString("Nothing matches the filter\n")
	default:
		b.WriteString("No medicines yet. Press n to add one.\n")
	}

	if m.mode == modeConfirm {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	writeError(&b, m.errMsg)

	hotKeys := "n: new │ e/enter: edit │ d: delete │ c: copy │ /: filter │ l: log out │ q: quit"
	switch m.mode {
	case modeFilter:
		hotKeys = "type to filter │ enter: done │ esc: clear"
	case modeConfirm:
		hotKeys = "y: delete │ n/esc: keep"
	}

	return renderPage("MY MEDICINES ("+m.owner+")", strings.TrimRight(b.String(), "\n"), hotKeys)
}
