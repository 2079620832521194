package alarm

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
)

type armed struct {
	at      time.Time
	payload string
	timer   *time.Timer
}

type timerFacility struct {
	mu     sync.Mutex
	alarms map[string]*armed
	closed bool

	deliverer   Deliverer
	exactDenied bool
	now         func() time.Time
	logger      *logger.Logger
}

// Option configures a timer facility.
type Option func(*timerFacility)

// WithExactAlarmsDenied makes every schedule call fail with
// [ErrExactAlarmDenied].
func WithExactAlarmsDenied(denied bool) Option {
	return func(f *timerFacility) {
		f.exactDenied = denied
	}
}

// WithClock overrides the clock used to compute timer delays.
func WithClock(now func() time.Time) Option {
	return func(f *timerFacility) {
		f.now = now
	}
}

// NewTimerFacility returns an in-process [Facility] backed by time.AfterFunc.
// Fired payloads go to d.
func NewTimerFacility(d Deliverer, log *logger.Logger, opts ...Option) Facility {
	f := &timerFacility{
		alarms:    make(map[string]*armed),
		deliverer: d,
		now:       time.Now,
		logger:    log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *timerFacility) ScheduleExactWake(key string, at time.Time, payload string) error {
	if f.exactDenied {
		f.logger.Warn().Str("func", "timerFacility.ScheduleExactWake").Str("key", key).Msg("exact alarm denied")
		return ErrExactAlarmDenied
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFacilityClosed
	}

	if prev, ok := f.alarms[key]; ok {
		prev.timer.Stop()
	}

	a := &armed{at: at, payload: payload}
	a.timer = time.AfterFunc(at.Sub(f.now()), func() { f.fire(key, a) })
	f.alarms[key] = a

	f.logger.Debug().
		Str("func", "timerFacility.ScheduleExactWake").
		Str("key", key).
		Time("at", at).
		Msg("alarm armed")

	return nil
}

// fire delivers a only if it is still the current alarm for key. A timer
// that was replaced or cancelled after it started running drops out here.
func (f *timerFacility) fire(key string, a *armed) {
	f.mu.Lock()
	if f.alarms[key] != a {
		f.mu.Unlock()
		return
	}
	delete(f.alarms, key)
	f.mu.Unlock()

	f.logger.Info().Str("func", "timerFacility.fire").Str("key", key).Msg("alarm fired")
	f.deliverer.Deliver(a.payload)
}

func (f *timerFacility) Cancel(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.alarms[key]
	if !ok {
		return false
	}
	a.timer.Stop()
	delete(f.alarms, key)
	return true
}

func (f *timerFacility) Pending(key string) (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.alarms[key]
	if !ok {
		return time.Time{}, false
	}
	return a.at, true
}

func (f *timerFacility) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key, a := range f.alarms {
		a.timer.Stop()
		delete(f.alarms, key)
	}
	f.closed = true
}
