// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment, e.g. DATABASE_URI for the
// medicine store, REARM_INTERVAL for the reminder re-arm job and
// EXACT_ALARMS_DENIED to simulate a device without exact-alarm permission.
// Unset variables leave their fields zero so the JSON file and defaults
// can fill them later.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading medreminder env config: %w", err)
	}
	return nil
}
