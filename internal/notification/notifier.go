// Package notification turns fired alarm payloads into user-visible
// notifications and fans them out to whoever is listening.
package notification

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/models"
)

const (
	// Channel is the delivery channel every medicine reminder is posted on.
	Channel = "medicine_alarm_channel"
	// Title is the fixed title of a medicine reminder.
	Title = "Medicine reminder"
	// DefaultBody replaces an empty alarm payload.
	DefaultBody = "It's time to take your medicine"
)

// IDGenerator produces unique notification ids.
type IDGenerator interface {
	Generate() string
}

// Notifier implements alarm.Deliverer.
type Notifier struct {
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]chan models.Notification
}

func NewNotifier(ids IDGenerator, log *logger.Logger) *Notifier {
	return &Notifier{
		ids:    ids,
		now:    time.Now,
		logger: log,
		subs:   make(map[int]chan models.Notification),
	}
}

// Deliver builds a notification from payload, logs it and offers it to every
// subscriber. A subscriber whose buffer is full misses the notification.
func (n *Notifier) Deliver(payload string) {
	body := payload
	if body == "" {
		body = DefaultBody
	}

	note := models.Notification{
		ID:          n.ids.Generate(),
		Channel:     Channel,
		Title:       Title,
		Body:        body,
		DeliveredAt: n.now(),
	}

	n.logger.Info().
		Str("func", "Notifier.Deliver").
		Str("id", note.ID).
		Str("channel", note.Channel).
		Str("body", note.Body).
		Msg("notification delivered")

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- note:
		default:
			n.logger.Warn().Str("func", "Notifier.Deliver").Str("id", note.ID).Msg("subscriber is full, notification dropped")
		}
	}
}

// Subscribe registers a listener with the given buffer size. The returned
// cancel func unregisters it and closes the channel.
func (n *Notifier) Subscribe(buffer int) (<-chan models.Notification, func()) {
	ch := make(chan models.Notification, buffer)

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = ch
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}
