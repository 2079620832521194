package config

import (
	"fmt"
	"time"
)

// ClientApp holds application settings used by the services.
type ClientApp struct {
	// ExactAlarmsDenied makes the alarm facility reject every schedule call.
	ExactAlarmsDenied bool
	// PasswordHashCost is the bcrypt cost for password hashes.
	PasswordHashCost int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL URL.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientLog contains the log sink settings.
type ClientLog struct {
	// FilePath is the log file path.
	FilePath string
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// RearmInterval defines how often the reminder re-arm job runs.
	RearmInterval time.Duration
}

// ClientConfig is the validated configuration of the medreminder binary,
// assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Log     ClientLog
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ExactAlarmsDenied: cfg.App.ExactAlarmsDenied,
			PasswordHashCost:  cfg.App.PasswordHashCost,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Log:     ClientLog{FilePath: cfg.Log.FilePath},
		Workers: ClientWorkers{RearmInterval: cfg.Workers.RearmInterval},
	}
}
