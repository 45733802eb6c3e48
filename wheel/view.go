// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"errors"
	"math"
	"sort"

	"github.com/danielhkuo/big12-wheel/models"
)

var (
	ErrAlreadySpinning = errors.New("wheel is already spinning")
	ErrNotSpinning     = errors.New("wheel is not spinning")
)

// View is the state of one wheel screen
type View struct {
	Rotation float64
	Spinning bool
	Result   string
	Results  models.AggregateCounts
	Loading  bool

	wheel   Wheel
	pending string
}

// NewView starts in the loading state with an empty tally
func NewView(w Wheel) *View {
	return &View{
		Results: models.AggregateCounts{},
		Loading: true,
		wheel:   w,
	}
}

// BeginSpin starts animating toward team and returns the new rotation.
// The rotation only ever grows so every spin turns the wheel forward.
func (v *View) BeginSpin(team string) (float64, error) {
	if v.Spinning {
		return v.Rotation, ErrAlreadySpinning
	}

	target, err := v.wheel.TargetRotation(team, FullSpins)
	if err != nil {
		return v.Rotation, err
	}

	v.Rotation = math.Ceil(v.Rotation/360)*360 + target
	v.Spinning = true
	v.Result = ""
	v.pending = team
	return v.Rotation, nil
}

// FinishSpin ends the animation and reveals the result
func (v *View) FinishSpin() (string, error) {
	if !v.Spinning {
		return "", ErrNotSpinning
	}
	v.Spinning = false
	v.Result = v.pending
	v.pending = ""
	return v.Result, nil
}

// ApplyResults replaces the displayed tally
func (v *View) ApplyResults(counts models.AggregateCounts) {
	if counts == nil {
		counts = models.AggregateCounts{}
	}
	v.Results = counts
	v.Loading = false
}

func (v *View) TotalSpins() int {
	return v.Results.Total()
}

// ChartRows lists every wheel team with its count, most spins first.
// Ties keep wheel order.
func (v *View) ChartRows() []models.TeamCount {
	rows := make([]models.TeamCount, len(v.wheel.teams))
	for i, team := range v.wheel.teams {
		rows[i] = models.TeamCount{Team: team, Count: v.Results[team]}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}
