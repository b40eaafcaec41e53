// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/evelinecho/cyclespace/cliparse"
	"github.com/evelinecho/cyclespace/identity"
	"github.com/evelinecho/cyclespace/middleware"
	"github.com/evelinecho/cyclespace/models"
)

type TrackerHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewTrackerHandler(db *sql.DB, cfg cliparse.Config) *TrackerHandler {
	return &TrackerHandler{db: db, cfg: cfg}
}

// Save handles POST /api/tracker
// An entry is keyed (owner, date) and replaced wholesale on save - symptoms
// are not merged with a previous save for the same day.
func (h *TrackerHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := identity.Validate(req.UserID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidDate(req.Date) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	if req.Mood != nil && !models.ValidMood(*req.Mood) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "mood must be one of: okay, low, anxious, irritable")
		return
	}
	if req.Symptoms == nil {
		req.Symptoms = []string{}
	}

	symptoms, err := json.Marshal(req.Symptoms)
	if err != nil {
		slog.Error("failed to marshal symptoms", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save tracker entry")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO tracker_entry (owner_id, entry_date, is_period_day, mood, symptoms, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id, entry_date) DO UPDATE SET
			is_period_day = excluded.is_period_day,
			mood = excluded.mood,
			symptoms = excluded.symptoms,
			updated_at = excluded.updated_at
	`, req.UserID, req.Date, req.IsPeriodDay, req.Mood, string(symptoms), time.Now().UTC())
	if err != nil {
		slog.Error("failed to upsert tracker entry", "error", err, "date", req.Date)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save tracker entry")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SaveEntryResponse{
		Message: "Entry saved",
		Date:    req.Date,
	})
}

// List handles GET /api/tracker/{userId}
func (h *TrackerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if err := identity.Validate(userID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.db.Query(`
		SELECT owner_id, entry_date, is_period_day, mood, symptoms, updated_at
		FROM tracker_entry
		WHERE owner_id = $1
	`, userID)
	if err != nil {
		slog.Error("failed to query tracker entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}
	defer rows.Close()

	entries := []models.TrackerEntry{}
	for rows.Next() {
		var e models.TrackerEntry
		var symptoms string
		if err := rows.Scan(&e.OwnerID, &e.Date, &e.IsPeriodDay, &e.Mood, &symptoms, &e.UpdatedAt); err != nil {
			slog.Error("failed to scan tracker entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch entries")
			return
		}
		if err := json.Unmarshal([]byte(symptoms), &e.Symptoms); err != nil {
			slog.Error("failed to unmarshal symptoms", "error", err, "date", e.Date)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch entries")
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate tracker entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
