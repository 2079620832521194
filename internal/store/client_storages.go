package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-med-reminder/internal/config"
	"github.com/MKhiriev/go-med-reminder/internal/logger"
)

// ClientStorages groups the repositories of the local store into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Users holds registered accounts.
	Users UserRepository
	// Medicines holds medicine records and serves the live listing feed.
	Medicines MedicineFeed

	db *DB
}

// NewClientStorages opens the store named by cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Users:     NewUserRepository(db, logger),
		Medicines: NewMedicineFeed(NewMedicineRepository(db, logger), logger),
		db:        db,
	}, nil
}

// Close releases the underlying connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
