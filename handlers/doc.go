// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Big 12 wheel API.

# Handler Types

SpinHandler records spins and serves the shared tally. It is created with
the database connection and config:

	spinHandler := handlers.NewSpinHandler(db, cfg)

Tests inject a clockwork fake clock for spun_at:

	spinHandler := handlers.NewSpinHandlerWithClock(db, cfg, clock)

# Endpoints

	POST /api/spin          → RecordSpin (append one spin, return tally)
	GET  /api/results       → GetResults (tally only)
	GET  /api/spins/recent  → GetRecentSpins (latest events)

The tally is a JSON object of team → count, most spins first (ties by
team name):

	{"Utah": 3, "BYU": 1}

# Storage Operations

The SQL lives in tally.go and is usable without HTTP:

	err := handlers.RecordSpin(ctx, db, "BYU", time.Now())
	counts, err := handlers.CountSpins(ctx, db)
	spins, err := handlers.RecentSpins(ctx, db, 10)

CountSpins returns models.RankedCounts in query order. RecordSpin never
validates the team against the wheel's list; any non-empty name that fits
the column is stored.

# Errors

  - 400 {"error": "Team is required"}: missing or empty team, or invalid JSON
  - 400 {"error": "Team must be at most 50 characters"}: team longer than the
    VARCHAR(50) column (counted in characters, not bytes)
  - 400 {"error": "limit must be between 1 and 100"}: bad recent-spins limit
  - 500 {"error": ..., "details": ...}: any database failure

Method checks (405) live in middleware.AllowMethod.
*/
package handlers
