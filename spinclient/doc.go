// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package spinclient is a Go client for the wheel API plus a Spinner that
plays the role of the browser screen: load, spin, report, refresh.

# Client

Client wraps the two public endpoints. Pass nil for the default
http.Client (10s timeout):

	client := spinclient.NewClient("http://localhost:3318", nil)

	counts, err := client.Results(ctx)        // GET /api/results
	counts, err = client.RecordSpin(ctx, "BYU") // POST /api/spin

Both return models.RankedCounts, most spins first, in the order the server
sent them. Use counts.Counts() for lookups by team and counts.Total() for
the number of spins.

# Spinner

Spinner drives one wheel through a full spin:

	sel, _ := wheel.NewSelector(wheel.Default(), wheel.FavoredTeam, wheel.DefaultBias, rng)
	spinner := spinclient.NewSpinner(client, sel, wheel.NewView(wheel.Default()), nil)
	spinner.SetWait(0) // skip the animation delay

	if err := spinner.Load(ctx); err != nil {
		// view holds an empty tally
	}
	team, err := spinner.Spin(ctx)

Spin picks a team, waits out the animation on the Spinner's clock (real
clock when nil, a clockwork fake in tests), then reports the pick and
applies the returned tally to the View. A failed report keeps the previous
tally.

# Errors

Any non-2xx response becomes an *HTTPError carrying StatusCode, Message
and Details from the {error, details} body, plus the request Method and URL:

	var httpErr *spinclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusBadRequest {
		...
	}

StatusCode(err) returns the status of a wrapped *HTTPError, or 0 for
transport and decoding errors.
*/
package spinclient
