// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/evelinecho/cyclespace/cliparse"
	"github.com/evelinecho/cyclespace/identity"
	"github.com/evelinecho/cyclespace/middleware"
	"github.com/evelinecho/cyclespace/models"
)

var errQuestionNotFound = errors.New("question not found")

type AnswerHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAnswerHandler(db *sql.DB, cfg cliparse.Config) *AnswerHandler {
	return &AnswerHandler{db: db, cfg: cfg}
}

// List handles GET /api/feed/questions/{id}/answers
// Answers come back sorted most-helpful-first, capped at one page.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, question_id, body, author_id, helpful_count, created_at
		FROM answer
		WHERE question_id = $1
		ORDER BY helpful_count DESC, created_at DESC
		LIMIT $2
	`, questionID, models.MaxAnswersPerPage)
	if err != nil {
		slog.Error("failed to query answers", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch answers")
		return
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Text, &a.AuthorID, &a.HelpfulCount, &a.CreatedAt); err != nil {
			slog.Error("failed to scan answer", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch answers")
			return
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch answers")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, answers)
}

// Post handles POST /api/feed/questions/{id}/answers
func (h *AnswerHandler) Post(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.PostAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := identity.Validate(req.UserID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	answer, err := postAnswer(h.db, questionID, req.UserID, req.Text)
	if err == errQuestionNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to post answer", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to post answer")
		return
	}

	slog.Info("answer posted", "question_id", questionID, "answer_id", answer.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.PostAnswerResponse{
		Message: "Answer posted",
	})
}

// postAnswer creates the answer and bumps the parent question's
// answer_count in one transaction, so no reader ever observes an answer
// without its count or a count without its answer.
func postAnswer(db *sql.DB, questionID, userID, text string) (models.Answer, error) {
	answer := models.Answer{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		Text:       text,
		AuthorID:   userID,
		CreatedAt:  time.Now().UTC(),
	}

	tx, err := db.Begin()
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)`, questionID).Scan(&exists)
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to look up question: %w", err)
	}
	if !exists {
		return models.Answer{}, errQuestionNotFound
	}

	_, err = tx.Exec(`
		INSERT INTO answer (id, question_id, body, author_id, helpful_count, created_at)
		VALUES ($1, $2, $3, $4, 0, $5)
	`, answer.ID, answer.QuestionID, answer.Text, answer.AuthorID, answer.CreatedAt)
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to insert answer: %w", err)
	}

	// Relative increment: concurrent submissions serialize on the question
	// row instead of clobbering each other with stale reads.
	_, err = tx.Exec(`
		UPDATE question SET answer_count = answer_count + 1 WHERE id = $1
	`, questionID)
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to increment answer count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Answer{}, fmt.Errorf("failed to commit answer: %w", err)
	}

	return answer, nil
}
