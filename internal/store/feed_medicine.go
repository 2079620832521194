package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/models"
)

type subscription struct {
	owner string
	// wake holds at most one pending signal; bursts of mutations coalesce.
	wake chan struct{}
}

// medicineFeed decorates a [MedicineRepository] with per-owner live listings.
type medicineFeed struct {
	MedicineRepository
	logger *logger.Logger

	mu   sync.Mutex
	subs map[string]map[*subscription]struct{}
}

// NewMedicineFeed wraps repo so that every successful mutation re-publishes
// the affected owner's listing to its subscribers.
func NewMedicineFeed(repo MedicineRepository, logger *logger.Logger) MedicineFeed {
	return &medicineFeed{
		MedicineRepository: repo,
		logger:             logger,
		subs:               make(map[string]map[*subscription]struct{}),
	}
}

func (f *medicineFeed) Insert(ctx context.Context, m models.Medicine) (int64, error) {
	id, err := f.MedicineRepository.Insert(ctx, m)
	if err != nil {
		return 0, err
	}
	f.publish(m.OwnerEmail)
	return id, nil
}

func (f *medicineFeed) Update(ctx context.Context, m models.Medicine) error {
	if err := f.MedicineRepository.Update(ctx, m); err != nil {
		return err
	}
	f.publish(m.OwnerEmail)
	return nil
}

func (f *medicineFeed) Delete(ctx context.Context, m models.Medicine) error {
	if err := f.MedicineRepository.Delete(ctx, m); err != nil {
		return err
	}
	f.publish(m.OwnerEmail)
	return nil
}

// Subscribe registers before reading the initial listing, so a mutation that
// lands in between still wakes the pump.
func (f *medicineFeed) Subscribe(ctx context.Context, ownerEmail string) (<-chan []models.Medicine, error) {
	sub := &subscription{owner: ownerEmail, wake: make(chan struct{}, 1)}
	f.mu.Lock()
	if f.subs[ownerEmail] == nil {
		f.subs[ownerEmail] = make(map[*subscription]struct{})
	}
	f.subs[ownerEmail][sub] = struct{}{}
	f.mu.Unlock()

	initial, err := f.ListByOwner(ctx, ownerEmail)
	if err != nil {
		f.unsubscribe(sub)
		return nil, err
	}

	out := make(chan []models.Medicine, 1)
	out <- initial

	go f.pump(ctx, sub, out)

	return out, nil
}

func (f *medicineFeed) pump(ctx context.Context, sub *subscription, out chan []models.Medicine) {
	defer close(out)
	defer f.unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.wake:
		}

		list, err := f.ListByOwner(ctx, sub.owner)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			f.logger.Err(err).Str("func", "medicineFeed.pump").Str("owner", sub.owner).Msg("failed to refresh listing")
			continue
		}

		// replace an unread stale snapshot
		select {
		case <-out:
		default:
		}
		select {
		case out <- list:
		case <-ctx.Done():
			return
		}
	}
}

func (f *medicineFeed) publish(owner string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs[owner] {
		select {
		case sub.wake <- struct{}{}:
		default:
		}
	}
}

func (f *medicineFeed) unsubscribe(sub *subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subs[sub.owner], sub)
	if len(f.subs[sub.owner]) == 0 {
		delete(f.subs, sub.owner)
	}
}
