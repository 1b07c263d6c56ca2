// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// PostgreSQL is reached through the database/sql adapter of pgx, registered
// under the driver name "pgx".
import _ "github.com/jackc/pgx/v5/stdlib"
