package store

import (
	"context"

	"github.com/MKhiriev/go-med-reminder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts keyed by email.
type UserRepository interface {
	InsertUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// MedicineRepository persists medicine records.
type MedicineRepository interface {
	// Insert stores m and returns the id assigned by the database.
	Insert(ctx context.Context, m models.Medicine) (int64, error)
	Update(ctx context.Context, m models.Medicine) error
	Delete(ctx context.Context, m models.Medicine) error
	GetByID(ctx context.Context, id int64) (models.Medicine, error)
	// ListByOwner returns the owner's records ordered by name.
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Medicine, error)
}

// MedicineFeed is a [MedicineRepository] that also pushes the owner's full
// listing to subscribers after every mutation.
type MedicineFeed interface {
	MedicineRepository

	// Subscribe returns a channel that first yields the current listing of
	// ownerEmail and then a fresh listing after each insert, update or delete
	// touching that owner. Unread snapshots are replaced by newer ones.
	// The channel is closed once ctx is done.
	Subscribe(ctx context.Context, ownerEmail string) (<-chan []models.Medicine, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
