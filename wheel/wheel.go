// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Teams is the fixed wheel, in segment order
var Teams = []string{
	"BYU", "Utah", "Colorado", "Arizona", "Arizona State",
	"Kansas", "Kansas State", "Iowa State", "UCF",
	"Cincinnati", "Houston", "TCU", "Texas Tech", "Baylor",
	"Oklahoma State", "West Virginia",
}

// FavoredTeam is the team the default selector is biased toward
const FavoredTeam = "BYU"

// Animation constants
const (
	FullSpins    = 5
	SpinDuration = 4 * time.Second
)

var (
	ErrNoTeams     = errors.New("wheel has no teams")
	ErrUnknownTeam = errors.New("team is not on the wheel")
)

// Segment is one equal slice of the wheel, in degrees
type Segment struct {
	Team  string
	Start float64
	End   float64
}

// Center is the angle the indicator points at when this segment wins
func (s Segment) Center() float64 {
	return (s.Start + s.End) / 2
}

// Wheel maps a team list onto equal angular segments.
// Angle 0 is under the indicator; a rotation of r degrees moves wheel angle a to a+r.
type Wheel struct {
	teams []string
}

func New(teams []string) (Wheel, error) {
	if len(teams) == 0 {
		return Wheel{}, ErrNoTeams
	}
	return Wheel{teams: append([]string(nil), teams...)}, nil
}

// Default returns the Big 12 wheel
func Default() Wheel {
	w, _ := New(Teams)
	return w
}

func (w Wheel) Teams() []string {
	return append([]string(nil), w.teams...)
}

func (w Wheel) SegmentAngle() float64 {
	return 360 / float64(len(w.teams))
}

func (w Wheel) Segments() []Segment {
	seg := w.SegmentAngle()
	out := make([]Segment, len(w.teams))
	for i, team := range w.teams {
		out[i] = Segment{Team: team, Start: float64(i) * seg, End: float64(i+1) * seg}
	}
	return out
}

func (w Wheel) IndexOf(team string) (int, error) {
	for i, t := range w.teams {
		if t == team {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
}

// TargetRotation returns the rotation that makes `spins` full turns and then
// stops with the indicator on the center of team's segment
func (w Wheel) TargetRotation(team string, spins int) (float64, error) {
	idx, err := w.IndexOf(team)
	if err != nil {
		return 0, err
	}
	seg := w.SegmentAngle()
	return float64(spins)*360 + (360 - (float64(idx)*seg + seg/2)), nil
}

// SegmentAt returns the team under the indicator after rotating by rotation degrees
func (w Wheel) SegmentAt(rotation float64) string {
	a := math.Mod(-rotation, 360)
	if a < 0 {
		a += 360
	}
	idx := int(a / w.SegmentAngle())
	if idx >= len(w.teams) {
		idx = len(w.teams) - 1
	}
	return w.teams[idx]
}
