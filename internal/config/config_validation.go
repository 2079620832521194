// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// bcrypt accepts costs in [4, 31].
const (
	minHashCost = 4
	maxHashCost = 31
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordHashCost < minHashCost || cfg.App.PasswordHashCost > maxHashCost {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RearmInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
