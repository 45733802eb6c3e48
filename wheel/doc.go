// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wheel holds the client side of the spinner: the team list, the
weighted selection policy, wheel geometry, and the view state.

# Selection

	sel, err := wheel.NewSelector(wheel.Default(), wheel.FavoredTeam, wheel.DefaultBias, nil)
	team := sel.Pick()

With probability bias the favored team wins; otherwise one of the other
teams is drawn uniformly. The pick is cosmetic: the server records whatever
team the client reports.

# Geometry

Sixteen equal segments of 22.5 degrees. TargetRotation(team, FullSpins)
turns the wheel FullSpins times and stops on the center of team's segment;
SegmentAt inverts it.

# View State

	v := wheel.NewView(wheel.Default())
	v.ApplyResults(counts)
	v.BeginSpin(team)  // ErrAlreadySpinning while a spin is in progress
	v.FinishSpin()
*/
package wheel
