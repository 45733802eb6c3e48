// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/big12-wheel/models"
)

// RecordSpin appends one spin event for team, stamped with at
func RecordSpin(ctx context.Context, db *sql.DB, team string, at time.Time) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO spin_results (team, spun_at)
		VALUES ($1, $2)
	`, team, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert spin: %w", err)
	}
	return nil
}

// CountSpins computes the per-team tally of every recorded spin, most spins
// first. An empty table yields an empty, non-nil tally.
func CountSpins(ctx context.Context, db *sql.DB) (models.RankedCounts, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT team, COUNT(*) AS count
		FROM spin_results
		GROUP BY team
		ORDER BY count DESC, team
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query spin counts: %w", err)
	}
	defer rows.Close()

	counts := models.RankedCounts{}
	for rows.Next() {
		var tc models.TeamCount
		if err := rows.Scan(&tc.Team, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan spin count: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read spin counts: %w", err)
	}

	return counts, nil
}

// RecentSpins returns up to limit spin events, newest first
func RecentSpins(ctx context.Context, db *sql.DB, limit int) ([]models.SpinEvent, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, team, spun_at
		FROM spin_results
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent spins: %w", err)
	}
	defer rows.Close()

	spins := []models.SpinEvent{}
	for rows.Next() {
		var spin models.SpinEvent
		var spunAt sql.NullTime
		if err := rows.Scan(&spin.ID, &spin.Team, &spunAt); err != nil {
			return nil, fmt.Errorf("failed to scan spin: %w", err)
		}
		if spunAt.Valid {
			spin.SpunAt = spunAt.Time.UTC()
		}
		spins = append(spins, spin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent spins: %w", err)
	}

	return spins, nil
}
