package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/store"
	"github.com/MKhiriev/go-med-reminder/models"
)

type listService struct {
	feed      store.MedicineFeed
	reminders ReminderScheduler
	logger    *logger.Logger
	armMu     *sync.Mutex

	mu       sync.Mutex
	owner    string
	snapshot []models.Medicine
	filter   string
	view     []models.Medicine
	views    chan []models.Medicine

	cancel context.CancelFunc
	done   chan struct{}
}

func NewListService(feed store.MedicineFeed, reminders ReminderScheduler, log *logger.Logger) ListService {
	return newListService(feed, reminders, new(sync.Mutex), log)
}

func newListService(feed store.MedicineFeed, reminders ReminderScheduler, armMu *sync.Mutex, log *logger.Logger) *listService {
	return &listService{
		feed:      feed,
		reminders: reminders,
		logger:    log,
		armMu:     armMu,
		views:     make(chan []models.Medicine, 1),
	}
}

func (s *listService) Observe(ctx context.Context, ownerEmail string) error {
	s.Close()

	subCtx, cancel := context.WithCancel(ctx)
	snapshots, err := s.feed.Subscribe(subCtx, ownerEmail)
	if err != nil {
		cancel()
		logger.FromContext(ctx).Err(err).Str("func", "listService.Observe").Str("owner", ownerEmail).Msg("failed to subscribe")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.owner = ownerEmail
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go s.consume(snapshots, done)
	return nil
}

func (s *listService) consume(snapshots <-chan []models.Medicine, done chan struct{}) {
	defer close(done)
	for snap := range snapshots {
		s.mu.Lock()
		s.snapshot = snap
		s.publishLocked()
		s.mu.Unlock()
	}
}

// publishLocked recomputes the view and replaces any unread one.
func (s *listService) publishLocked() {
	s.view = applyFilter(s.snapshot, s.filter)

	select {
	case <-s.views:
	default:
	}
	select {
	case s.views <- s.view:
	default:
	}
}

func applyFilter(list []models.Medicine, filter string) []models.Medicine {
	out := make([]models.Medicine, 0, len(list))
	if strings.TrimSpace(filter) == "" {
		return append(out, list...)
	}

	needle := strings.ToLower(filter)
	for _, m := range list {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			out = append(out, m)
		}
	}
	return out
}

func (s *listService) SetFilter(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = text
	s.publishLocked()
}

func (s *listService) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *listService) View() []models.Medicine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Medicine(nil), s.view...)
}

func (s *listService) Views() <-chan []models.Medicine {
	return s.views
}

func (s *listService) Delete(ctx context.Context, m models.Medicine) error {
	s.armMu.Lock()
	defer s.armMu.Unlock()

	if err := s.feed.Delete(ctx, m); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "listService.Delete").Int64("id", m.ID).Msg("failed to delete medicine")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	s.reminders.Cancel(ReminderKey(m.ID))
	return nil
}

func (s *listService) DueToday(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, m := range s.snapshot {
		at, err := m.TimeOfDay.On(now)
		if err != nil {
			continue
		}
		if !at.Before(now) {
			count++
		}
	}
	return count
}

func (s *listService) Close() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner = ""
	s.snapshot = nil
	s.view = nil
	s.filter = ""
	select {
	case <-s.views:
	default:
	}
}
