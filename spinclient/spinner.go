// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package spinclient

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/big12-wheel/models"
	"github.com/danielhkuo/big12-wheel/wheel"
)

// Spinner runs the wheel screen: load the tally, spin, report, refresh.
// It drives a single View and is not safe for concurrent use.
type Spinner struct {
	client   *Client
	selector *wheel.Selector
	view     *wheel.View
	clock    clockwork.Clock
	wait     time.Duration
}

// NewSpinner wires a client, selector, and view. A nil clock uses the real clock.
func NewSpinner(client *Client, selector *wheel.Selector, view *wheel.View, clock clockwork.Clock) *Spinner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Spinner{
		client:   client,
		selector: selector,
		view:     view,
		clock:    clock,
		wait:     wheel.SpinDuration,
	}
}

// SetWait overrides how long a spin animates before it lands
func (s *Spinner) SetWait(d time.Duration) {
	s.wait = d
}

func (s *Spinner) View() *wheel.View {
	return s.view
}

// Load fetches the tally. On failure the view falls back to an empty tally
// and the error is returned for the caller to report.
func (s *Spinner) Load(ctx context.Context) error {
	counts, err := s.client.Results(ctx)
	if err != nil {
		slog.Error("failed to load results", "error", err)
		s.view.ApplyResults(models.AggregateCounts{})
		return fmt.Errorf("load results: %w", err)
	}
	s.view.ApplyResults(counts.Counts())
	return nil
}

// Spin picks a team, waits out the animation, then reports it.
// A failed report keeps the previous tally and returns the landed team with the error.
func (s *Spinner) Spin(ctx context.Context) (string, error) {
	team := s.selector.Pick()
	if _, err := s.view.BeginSpin(team); err != nil {
		return "", err
	}

	select {
	case <-s.clock.After(s.wait):
	case <-ctx.Done():
		_, _ = s.view.FinishSpin()
		return team, ctx.Err()
	}

	if _, err := s.view.FinishSpin(); err != nil {
		return team, err
	}

	counts, err := s.client.RecordSpin(ctx, team)
	if err != nil {
		slog.Error("failed to save result", "team", team, "error", err)
		return team, fmt.Errorf("record spin: %w", err)
	}
	s.view.ApplyResults(counts.Counts())
	return team, nil
}
