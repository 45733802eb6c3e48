// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Big 12 wheel API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Spins:

	GET  /api/results       - Per-team tally
	POST /api/spin          - Record a spin, returns the tally
	GET  /api/spins/recent  - Latest spins, newest first

The API routes accept OPTIONS as a no-op and answer other wrong methods
with a JSON 405.
*/
package router
