package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/store"
	"github.com/MKhiriev/go-med-reminder/internal/validators"
	"github.com/MKhiriev/go-med-reminder/models"
)

type entryService struct {
	medicines store.MedicineRepository
	reminders ReminderScheduler
	validator validators.Validator
	logger    *logger.Logger
	// armMu is shared with the list service and the rearm job; a record's
	// mutation and its reminder change happen under it.
	armMu *sync.Mutex

	mu        sync.Mutex
	draft     models.Draft
	editingID int64
}

// NewEntryService creates an EntryService with an empty draft.
func NewEntryService(medicines store.MedicineRepository, reminders ReminderScheduler, log *logger.Logger) EntryService {
	return newEntryService(medicines, reminders, new(sync.Mutex), log)
}

func newEntryService(medicines store.MedicineRepository, reminders ReminderScheduler, armMu *sync.Mutex, log *logger.Logger) *entryService {
	return &entryService{
		medicines: medicines,
		reminders: reminders,
		validator: validators.NewMedicineValidator(),
		logger:    log,
		armMu:     armMu,
		draft:     models.NewDraft(),
	}
}

func (s *entryService) Draft() models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *entryService) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Name = name
}

func (s *entryService) SetDose(dose string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Dose = dose
}

func (s *entryService) SetFrequency(frequency string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Frequency = frequency
}

func (s *entryService) SetTimeOfDay(timeOfDay models.TimeOfDay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.TimeOfDay = timeOfDay
}

func (s *entryService) EditingID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

func (s *entryService) LoadIfEditing(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}

	s.mu.Lock()
	loaded := s.editingID != 0
	s.mu.Unlock()
	if loaded {
		return nil
	}

	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entryService.LoadIfEditing").Int64("id", id).Msg("failed to load medicine")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID != 0 {
		return nil
	}
	s.editingID = m.ID
	s.draft = models.DraftFromMedicine(m)
	return nil
}

func (s *entryService) Save(ctx context.Context, ownerEmail string) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if ownerEmail == "" {
		return models.SaveResult{}, ErrNotLoggedIn
	}

	s.mu.Lock()
	draft, id := s.draft, s.editingID
	s.mu.Unlock()

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	m := draft.ToMedicine(id, ownerEmail)
	m.TimeOfDay, _ = m.TimeOfDay.Normalize()

	s.armMu.Lock()
	defer s.armMu.Unlock()

	if m.Persisted() {
		if err := s.medicines.Update(ctx, m); err != nil {
			log.Err(err).Str("func", "entryService.Save").Int64("id", m.ID).Msg("failed to update medicine")
			return models.SaveResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
		}
	} else {
		newID, err := s.medicines.Insert(ctx, m)
		if err != nil {
			log.Err(err).Str("func", "entryService.Save").Msg("failed to insert medicine")
			return models.SaveResult{}, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		m.ID = newID
	}

	result := models.SaveResult{Medicine: m}
	result.FireAt, result.ReminderErr = s.reminders.Schedule(ctx, ReminderKey(m.ID), ReminderLabel(m.Name), m.TimeOfDay)
	if result.ReminderErr != nil {
		log.Warn().Err(result.ReminderErr).Str("func", "entryService.Save").Int64("id", m.ID).Msg("medicine saved without reminder")
	}

	s.Reset()
	return result, nil
}

func (s *entryService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = models.NewDraft()
	s.editingID = 0
}
