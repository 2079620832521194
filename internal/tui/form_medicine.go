package tui

import (
	"strings"

	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/MKhiriev/go-med-reminder/models"
)

const (
	fieldName = iota
	fieldDose
	fieldFrequency
	fieldTimeOfDay
)

// medicineForm edits the draft held by the entry coordinator.
type medicineForm struct {
	fields     fieldForm
	editingID  int64
	submitting bool
	errMsg     string
}

func newMedicineForm(d models.Draft, editingID int64) medicineForm {
	f := newFieldForm(
		fieldSpec{label: "Name", placeholder: "Vitamin C"},
		fieldSpec{label: "Dose", placeholder: "1 tablet"},
		fieldSpec{label: "Frequency", placeholder: "daily"},
		fieldSpec{label: "Time", placeholder: "HH:MM"},
	)
	f.inputs[fieldTimeOfDay].CharLimit = 5

	f.setValue(fieldName, d.Name)
	f.setValue(fieldDose, d.Dose)
	f.setValue(fieldFrequency, d.Frequency)
	f.setValue(fieldTimeOfDay, string(d.TimeOfDay))

	return medicineForm{fields: f, editingID: editingID}
}

// bind copies the inputs into the entry draft.
func (m *medicineForm) bind(entry service.EntryService) {
	entry.SetName(m.fields.value(fieldName))
	entry.SetDose(m.fields.value(fieldDose))
	entry.SetFrequency(m.fields.value(fieldFrequency))
	entry.SetTimeOfDay(models.TimeOfDay(strings.TrimSpace(m.fields.value(fieldTimeOfDay))))
}

func (m *medicineForm) View() string {
	title := "NEW MEDICINE"
	if m.editingID > 0 {
		title = "EDIT MEDICINE"
	}

	var b strings.Builder
	b.WriteString(m.fields.View())

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	writeError(&b, m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter/ctrl+s: save")
}
