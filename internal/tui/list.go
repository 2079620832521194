package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-med-reminder/models"
)

const (
	nameColWidth      = 24
	doseColWidth      = 14
	frequencyColWidth = 14
)

func renderMedicineTable(items []models.Medicine, idx int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-5s │ %-*s │ %-*s │ %-*s\n",
		"Time", nameColWidth, "Name", doseColWidth, "Dose", frequencyColWidth, "Frequency"))
	b.WriteString("  " + strings.Repeat("─", 6) + "┼" + strings.Repeat("─", nameColWidth+2) + "┼" +
		strings.Repeat("─", doseColWidth+2) + "┼" + strings.Repeat("─", frequencyColWidth+1) + "\n")

	for i, m := range items {
		row := fmt.Sprintf("%-5s │ %-*s │ %-*s │ %-*s",
			m.TimeOfDay,
			nameColWidth, fitText(m.Name, nameColWidth),
			doseColWidth, fitText(m.Dose, doseColWidth),
			frequencyColWidth, fitText(m.Frequency, frequencyColWidth),
		)
		if i == idx {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// reminderText is what the copy action puts on the clipboard.
func reminderText(m models.Medicine) string {
	return fmt.Sprintf("%s: %s, %s at %s", m.Name, m.Dose, m.Frequency, m.TimeOfDay)
}
