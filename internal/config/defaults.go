package config

import "time"

// Built-in fallbacks applied after every other source.
const (
	DefaultDSN              = "medreminder.db"
	DefaultLogFile          = "medreminder.log"
	DefaultPasswordHashCost = 10
	DefaultRearmInterval    = time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: DefaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Log: Log{
			FilePath: DefaultLogFile,
		},
		Workers: Workers{
			RearmInterval: DefaultRearmInterval,
		},
	}
}
