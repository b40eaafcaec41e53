// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/evelinecho/cyclespace/cliparse"
	"github.com/evelinecho/cyclespace/identity"
	"github.com/evelinecho/cyclespace/middleware"
	"github.com/evelinecho/cyclespace/models"
)

type FeedHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewFeedHandler(db *sql.DB, cfg cliparse.Config) *FeedHandler {
	return &FeedHandler{db: db, cfg: cfg}
}

// List handles GET /api/feed?ageRange=
// Questions only; answers are fetched per-question on demand. No server-side
// ordering is promised - clients sort by timestamp.
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	ageRange := r.URL.Query().Get("ageRange")

	query := `
		SELECT id, age_range, category, body, preview, author_id, answer_count, is_expired, posted_at_ms, created_at
		FROM question
	`
	args := []interface{}{}
	if ageRange != "" {
		query += ` WHERE age_range = $1`
		args = append(args, ageRange)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query feed", "error", err, "age_range", ageRange)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch feed")
		return
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		err := rows.Scan(&q.ID, &q.AgeRange, &q.Category, &q.Text, &q.PreviewText,
			&q.AuthorID, &q.AnswerCount, &q.IsExpired, &q.Timestamp, &q.CreatedAt)
		if err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch feed")
			return
		}
		q.PostedAgo = humanize.Time(q.CreatedAt)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch feed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// Post handles POST /api/feed/questions
func (h *FeedHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req models.PostQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := identity.Validate(req.UserID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidAgeRange(req.AgeRange) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ageRange must be one of: 13-14, 15-16, 17-18")
		return
	}
	if req.Category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "category is required")
		return
	}
	if utf8.RuneCountInString(req.Text) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text must be at least 2 characters")
		return
	}

	now := time.Now().UTC()
	question := models.Question{
		ID:          uuid.NewString(),
		AgeRange:    req.AgeRange,
		Category:    req.Category,
		Text:        req.Text,
		PreviewText: models.MakePreview(req.Text),
		AuthorID:    req.UserID,
		AnswerCount: 0,
		IsExpired:   false,
		Timestamp:   now.UnixMilli(),
		CreatedAt:   now,
	}

	_, err := h.db.Exec(`
		INSERT INTO question (id, age_range, category, body, preview, author_id, answer_count, is_expired, posted_at_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, FALSE, $7, $8)
	`, question.ID, question.AgeRange, question.Category, question.Text,
		question.PreviewText, question.AuthorID, question.Timestamp, question.CreatedAt)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to post question")
		return
	}

	slog.Info("question posted", "question_id", question.ID, "age_range", question.AgeRange)

	question.PostedAgo = humanize.Time(question.CreatedAt)
	middleware.JSONResponse(w, http.StatusCreated, question)
}
