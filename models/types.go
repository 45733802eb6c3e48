package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// MaxTeamLength matches the width of the spin_results.team column
const MaxTeamLength = 50

// Request types

type SpinRequest struct {
	Team string `json:"team"`
}

// Domain types

// SpinEvent is one recorded spin. Rows are appended and never updated.
type SpinEvent struct {
	ID     int64     `json:"id"`
	Team   string    `json:"team"`
	SpunAt time.Time `json:"spun_at"`
}

// AggregateCounts maps team name -> number of recorded spins
type AggregateCounts map[string]int

// Total returns the number of spins across all teams
func (c AggregateCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

type TeamCount struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

// Ranked returns the counts ordered by descending count, ties by team name
func (c AggregateCounts) Ranked() RankedCounts {
	ranked := make(RankedCounts, 0, len(c))
	for team, n := range c {
		ranked = append(ranked, TeamCount{Team: team, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Team < ranked[j].Team
	})
	return ranked
}

// RankedCounts is a tally in display order, most spins first.
// It encodes as a JSON object whose keys keep that order.
type RankedCounts []TeamCount

func (r RankedCounts) Total() int {
	total := 0
	for _, tc := range r {
		total += tc.Count
	}
	return total
}

// Counts returns the tally as a team -> count map
func (r RankedCounts) Counts() AggregateCounts {
	counts := make(AggregateCounts, len(r))
	for _, tc := range r {
		counts[tc.Team] += tc.Count
	}
	return counts
}

func (r RankedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tc := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(tc.Team)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(tc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a team -> count object, keeping key order
func (r *RankedCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ranked counts: expected object, got %v", tok)
	}

	out := RankedCounts{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		team, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ranked counts: expected team name, got %v", tok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("ranked counts: count for %q: %w", team, err)
		}
		out = append(out, TeamCount{Team: team, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

// Response types

type RecentSpinsResponse struct {
	Spins []SpinEvent `json:"spins"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
