// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open selects the driver for the configured database type and pings it:

	conn, err := db.Open(db.TypePostgres, "postgres://...")

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite, used for local development and tests).

# Schema Creation

CreateSchema initializes the spin table:

	if err := db.CreateSchema(conn, db.TypePostgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.
It runs once at server start, not per request.

# Tables

	spin_results (
	    id      auto-increment primary key,
	    team    VARCHAR(50) NOT NULL,
	    spun_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)

Rows are only ever appended. Per-team totals are computed with
COUNT(*) ... GROUP BY team.

# Indexes

  - idx_team on spin_results(team)
*/
package db
