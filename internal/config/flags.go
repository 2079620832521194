package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-d database DSN (SQLite file path or postgres:// URL)
//	-c/-config json file path with configs
//	-log-file log file path
//	-hash-cost bcrypt cost for password hashing
//	-deny-exact-alarms emulate a platform without the exact-alarm capability
//	-rearm-interval reminder re-arm interval (e.g., "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("medreminder", flag.ContinueOnError)

	var (
		databaseDSN       string
		jsonConfigPath    string
		logFile           string
		hashCost          int
		exactAlarmsDenied bool
		rearmInterval     time.Duration
	)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost for password hashing")
	fs.BoolVar(&exactAlarmsDenied, "deny-exact-alarms", false, "Emulate missing exact-alarm permission")
	fs.DurationVar(&rearmInterval, "rearm-interval", 0, "Reminder re-arm interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ExactAlarmsDenied: exactAlarmsDenied,
			PasswordHashCost:  hashCost,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Log: Log{
			FilePath: logFile,
		},
		Workers: Workers{
			RearmInterval: rearmInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
