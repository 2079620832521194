package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/store"
)

// DefaultRearmInterval is used when the configured interval is not positive.
const DefaultRearmInterval = time.Minute

// ownerSource reports the logged-in user, or "" when nobody is.
type ownerSource interface {
	CurrentEmail() string
}

type rearmJob struct {
	owners    ownerSource
	medicines store.MedicineRepository
	reminders ReminderScheduler
	interval  time.Duration
	armMu     *sync.Mutex
	kick      chan struct{}
	logger    *logger.Logger
}

// NewRearmJob creates a job that, for the logged-in user, schedules every
// record that has no pending reminder. The job is idle until Run is called.
func NewRearmJob(owners ownerSource, medicines store.MedicineRepository, reminders ReminderScheduler, interval time.Duration, log *logger.Logger) RearmJob {
	return newRearmJob(owners, medicines, reminders, interval, new(sync.Mutex), log)
}

func newRearmJob(owners ownerSource, medicines store.MedicineRepository, reminders ReminderScheduler, interval time.Duration, armMu *sync.Mutex, log *logger.Logger) *rearmJob {
	if interval <= 0 {
		interval = DefaultRearmInterval
	}
	return &rearmJob{
		owners:    owners,
		medicines: medicines,
		reminders: reminders,
		interval:  interval,
		armMu:     armMu,
		kick:      make(chan struct{}, 1),
		logger:    log,
	}
}

// Run performs a pass immediately, then on every tick and every Kick, until
// ctx is cancelled.
func (j *rearmJob) Run(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	j.rearm(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		case <-j.kick:
		}
		j.rearm(ctx)
	}
}

func (j *rearmJob) Kick() {
	select {
	case j.kick <- struct{}{}:
	default:
	}
}

// rearm returns the number of reminders it scheduled.
func (j *rearmJob) rearm(ctx context.Context) int {
	owner := j.owners.CurrentEmail()
	if owner == "" {
		return 0
	}

	list, err := j.medicines.ListByOwner(ctx, owner)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Str("func", "rearmJob.rearm").Str("owner", owner).Msg("failed to list medicines")
		}
		return 0
	}

	scheduled := 0
	for _, m := range list {
		ok, err := j.rearmOne(ctx, m.ID)
		if err != nil {
			j.logger.Warn().Err(err).Str("func", "rearmJob.rearm").Int64("id", m.ID).Msg("failed to re-arm reminder")
			if errors.Is(err, ErrSchedulingPermission) {
				// every other record would be denied too
				break
			}
			continue
		}
		if ok {
			scheduled++
		}
	}

	if scheduled > 0 {
		j.logger.Info().Str("func", "rearmJob.rearm").Int("scheduled", scheduled).Msg("reminders re-armed")
	}
	return scheduled
}

// rearmOne schedules the record with the given id unless it already has a
// pending reminder. The listing may be stale by now, so the record is read
// again under armMu; a record deleted since is skipped.
func (j *rearmJob) rearmOne(ctx context.Context, id int64) (bool, error) {
	j.armMu.Lock()
	defer j.armMu.Unlock()

	key := ReminderKey(id)
	if _, ok := j.reminders.Pending(key); ok {
		return false, nil
	}

	m, err := j.medicines.GetByID(ctx, id)
	if errors.Is(err, store.ErrMedicineNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := j.reminders.Schedule(ctx, key, ReminderLabel(m.Name), m.TimeOfDay); err != nil {
		return false, err
	}
	return true, nil
}
