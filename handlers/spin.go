// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/big12-wheel/cliparse"
	"github.com/danielhkuo/big12-wheel/middleware"
	"github.com/danielhkuo/big12-wheel/models"
)

// Recent spin listing bounds
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

type SpinHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	clock clockwork.Clock
}

func NewSpinHandler(db *sql.DB, cfg cliparse.Config) *SpinHandler {
	return NewSpinHandlerWithClock(db, cfg, clockwork.NewRealClock())
}

// NewSpinHandlerWithClock is NewSpinHandler with an injected clock for spun_at
func NewSpinHandlerWithClock(db *sql.DB, cfg cliparse.Config, clock clockwork.Clock) *SpinHandler {
	return &SpinHandler{db: db, cfg: cfg, clock: clock}
}

// RecordSpin handles POST /api/spin
// Appends one spin and returns the refreshed tally. The insert and the
// follow-up count are independent statements, not one transaction.
func (h *SpinHandler) RecordSpin(w http.ResponseWriter, r *http.Request) {
	var req models.SpinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.Team == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Team is required")
		return
	}

	// Column is VARCHAR(50)
	if utf8.RuneCountInString(req.Team) > models.MaxTeamLength {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Team must be at most %d characters", models.MaxTeamLength))
		return
	}

	if err := RecordSpin(r.Context(), h.db, req.Team, h.clock.Now()); err != nil {
		slog.Error("failed to record spin", "team", req.Team, "error", err)
		middleware.StorageErrorResponse(w, "Failed to record spin", err)
		return
	}

	counts, err := CountSpins(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to count spins after insert", "error", err)
		middleware.StorageErrorResponse(w, "Failed to record spin", err)
		return
	}

	slog.Info("spin recorded", "team", req.Team, "total", counts.Total())
	middleware.JSONResponse(w, http.StatusOK, counts)
}

// GetResults handles GET /api/results
func (h *SpinHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	counts, err := CountSpins(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to count spins", "error", err)
		middleware.StorageErrorResponse(w, "Failed to fetch results", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}

// GetRecentSpins handles GET /api/spins/recent?limit=N
func (h *SpinHandler) GetRecentSpins(w http.ResponseWriter, r *http.Request) {
	limit := DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxRecentLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("limit must be between 1 and %d", MaxRecentLimit))
			return
		}
		limit = n
	}

	spins, err := RecentSpins(r.Context(), h.db, limit)
	if err != nil {
		slog.Error("failed to list recent spins", "error", err)
		middleware.StorageErrorResponse(w, "Failed to fetch recent spins", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RecentSpinsResponse{Spins: spins})
}
