// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/evelinecho/cyclespace/cliparse"
	"github.com/evelinecho/cyclespace/identity"
	"github.com/evelinecho/cyclespace/middleware"
	"github.com/evelinecho/cyclespace/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Register handles POST /api/users
// Registration is an idempotent merge-upsert keyed by the client-generated
// uid: age range is overwritten, email only when provided, created_at is
// preserved from the first registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := identity.Validate(req.UID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidAgeRange(req.AgeRange) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ageRange must be one of: 13-14, 15-16, 17-18")
		return
	}
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is invalid")
		return
	}

	_, err := h.db.Exec(`
		INSERT INTO users (id, age_range, email, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			age_range = excluded.age_range,
			email = COALESCE(excluded.email, users.email)
	`, req.UID, req.AgeRange, req.Email, time.Now().UTC())
	if err != nil {
		slog.Error("failed to upsert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user profile updated", "uid", req.UID, "age_range", req.AgeRange)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterUserResponse{
		Message: "User profile updated",
		UID:     req.UID,
	})
}
