package service

import (
	"sync"

	"github.com/MKhiriev/go-med-reminder/internal/alarm"
	"github.com/MKhiriev/go-med-reminder/internal/config"
	"github.com/MKhiriev/go-med-reminder/internal/crypto"
	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/store"
)

type ClientServices struct {
	Session   SessionService
	Entry     EntryService
	List      ListService
	Reminders ReminderScheduler
	Rearm     RearmJob
}

// NewClientServices wires the coordinators. Logging out resets the entry
// form and ends the list subscription. Saving, deleting and re-arming share
// one lock, so a reminder is never armed for a record that is gone.
func NewClientServices(storages *store.ClientStorages, facility alarm.Facility, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	reminders := NewReminderScheduler(facility, log)
	session := NewSessionService(storages.Users, crypto.NewBcryptHasher(cfg.App.PasswordHashCost), log)
	armMu := new(sync.Mutex)
	entry := newEntryService(storages.Medicines, reminders, armMu, log)
	list := newListService(storages.Medicines, reminders, armMu, log)

	session.OnLogout(entry.Reset)
	session.OnLogout(list.Close)

	return &ClientServices{
		Session:   session,
		Entry:     entry,
		List:      list,
		Reminders: reminders,
		Rearm:     newRearmJob(session, storages.Medicines, reminders, cfg.Workers.RearmInterval, armMu, log),
	}
}
