package tui

import "github.com/MKhiriev/go-med-reminder/models"

type bannerModel struct {
	note models.Notification
}

func (m bannerModel) View() string {
	content := m.note.Title + "\n" + m.note.Body + "\n" + helpStyle.Render(m.note.DeliveredAt.Format("15:04")+"  x: dismiss")
	return bannerStyle.Render(content)
}
