// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SpinRequest: team

# Response Types

  - RankedCounts: team -> spin count, encoded as a JSON object whose keys
    are in descending count order
  - RecentSpinsResponse: spins (newest first)
  - ErrorResponse: error, details

# Domain Types

  - SpinEvent: one immutable recorded spin (id, team, spun_at)
  - AggregateCounts: team -> spin count map, for lookups on the client
  - TeamCount: a single row of a ranked tally

The tally is derived from the spin_results table on every read and is never
stored. Its Total always equals the number of recorded spins.
*/
package models
