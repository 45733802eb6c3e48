// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Big 12 wheel API server.

The wheel picks one of sixteen Big 12 teams (weighted toward BYU) and every
pick is recorded in a shared tally that all visitors see.

# Starting the Server

The server reads environment variables (optionally from a .env file) or CLI
flags:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run .

Or with flags, using an on-disk SQLite file:

	go run . -p 3318 -d "file:wheel.db"

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ALLOWED_ORIGINS (-origins): CORS origins (default: any)

# Architecture

  - handlers: spin recording and tally queries
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, method checks, JSON helpers
  - models: Request/response types
  - db: Connections and schema creation
  - cliparse: Configuration parsing
  - wheel: Team list, weighted selection, wheel geometry, view state
  - spinclient: Go client for the API and a spin driver
  - cmd/spin: Command-line wheel

See package documentation for each component.
*/
package main
