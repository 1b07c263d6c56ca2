// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, STORAGE_DB_, SERVER_, ADAPTER_ and
// WORKERS_ variables plus CONFIG. Unset variables leave fields zero so the
// builder's defaults survive the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrReadingEnv, err)
	}

	return nil
}
