package tui

import (
	"fmt"

	"github.com/MKhiriev/go-med-reminder/internal/app"
)

type confirmModel struct {
	name string
}

func (m confirmModel) View() string {
	content := fmt.Sprintf(app.MsgDeleteConfirm, "\""+m.name+"\"")
	return overlayBoxStyle.Render(content)
}
