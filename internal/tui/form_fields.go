package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldForm is a column of labelled text inputs with tab navigation.
type fieldForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
}

func newFieldForm(fields ...fieldSpec) fieldForm {
	f := fieldForm{}
	for _, spec := range fields {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		if in.Placeholder == "" {
			in.Placeholder = strings.ToLower(spec.label)
		}
		in.CharLimit = 256
		in.Width = 40
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels = append(f.labels, spec.label)
		f.inputs = append(f.inputs, in)
	}
	f.inputs[0].Focus()
	return f
}

func (f *fieldForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f *fieldForm) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *fieldForm) lastFocused() bool {
	return f.focus == len(f.inputs)-1
}

// update moves focus on tab keys and forwards anything else to the focused
// input. It reports whether msg was consumed as navigation.
func (f *fieldForm) update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.setFocus((f.focus + 1) % len(f.inputs))
			return true, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
			return true, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}

func (f *fieldForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *fieldForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(0)
}

func (f *fieldForm) View() string {
	width := 0
	for _, l := range f.labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, l := range f.labels {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", width, l, f.inputs[i].View()))
	}
	return b.String()
}
