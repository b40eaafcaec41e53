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

	"github.com/evelinecho/cyclespace/cliparse"
	"github.com/evelinecho/cyclespace/identity"
	"github.com/evelinecho/cyclespace/middleware"
	"github.com/evelinecho/cyclespace/models"
)

var (
	errAnswerNotFound = errors.New("answer not found")

	// errToggleConflict means a concurrent toggle for the same (user, answer)
	// pair committed between our ledger read and our write. The toggle is
	// re-run from the ledger read, mirroring how a document store retries
	// conflicting transactions.
	errToggleConflict = errors.New("concurrent toggle conflict")
)

const toggleMaxAttempts = 3

type HelpfulHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewHelpfulHandler(db *sql.DB, cfg cliparse.Config) *HelpfulHandler {
	return &HelpfulHandler{db: db, cfg: cfg}
}

// Toggle handles POST /api/feed/questions/{qid}/answers/{aid}/helpful
func (h *HelpfulHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("qid")
	answerID := r.PathValue("aid")
	if questionID == "" || answerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question and answer ids are required")
		return
	}

	var req models.ToggleHelpfulRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := identity.Validate(req.UserID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	action, err := toggleHelpful(h.db, req.UserID, questionID, answerID)
	if err == errAnswerNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Answer not found")
		return
	}
	if err != nil {
		slog.Error("failed to toggle helpful vote", "error", err,
			"question_id", questionID, "answer_id", answerID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to toggle vote")
		return
	}

	slog.Info("helpful vote toggled", "answer_id", answerID, "action", action)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleHelpfulResponse{
		Message: "Vote updated",
		Action:  action,
	})
}

// toggleHelpful flips the user's helpful-vote on an answer and keeps the
// denormalized helpful_count consistent with the vote ledger. Each attempt
// is a single transaction; a lost insert race re-runs the whole attempt.
func toggleHelpful(db *sql.DB, userID, questionID, answerID string) (string, error) {
	for attempt := 0; attempt < toggleMaxAttempts; attempt++ {
		action, err := toggleOnce(db, userID, questionID, answerID)
		if err == errToggleConflict {
			continue
		}
		return action, err
	}
	return "", fmt.Errorf("helpful toggle did not settle after %d attempts", toggleMaxAttempts)
}

func toggleOnce(db *sql.DB, userID, questionID, answerID string) (string, error) {
	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM answer WHERE id = $1 AND question_id = $2)
	`, answerID, questionID).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("failed to look up answer: %w", err)
	}
	if !exists {
		return "", errAnswerNotFound
	}

	// Read the ledger by trying the remove first: a deleted row means the
	// vote existed as of this transaction's snapshot.
	res, err := tx.Exec(`
		DELETE FROM vote WHERE user_id = $1 AND answer_id = $2
	`, userID, answerID)
	if err != nil {
		return "", fmt.Errorf("failed to delete vote: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to read delete result: %w", err)
	}

	var action string
	if removed == 1 {
		// Floor at zero: if the counter already drifted below the ledger,
		// a remove must not push it negative.
		_, err = tx.Exec(`
			UPDATE answer
			SET helpful_count = CASE WHEN helpful_count > 0 THEN helpful_count - 1 ELSE 0 END
			WHERE id = $1
		`, answerID)
		if err != nil {
			return "", fmt.Errorf("failed to decrement helpful count: %w", err)
		}
		action = models.ActionRemoved
	} else {
		res, err = tx.Exec(`
			INSERT INTO vote (user_id, answer_id, question_id, voted_at_ms)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, answer_id) DO NOTHING
		`, userID, answerID, questionID, time.Now().UnixMilli())
		if err != nil {
			return "", fmt.Errorf("failed to insert vote: %w", err)
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return "", fmt.Errorf("failed to read insert result: %w", err)
		}
		if inserted == 0 {
			// A concurrent toggle created the vote after our delete saw
			// nothing. Retry so this invocation observes it and removes it.
			return "", errToggleConflict
		}

		// Relative increment inside the same transaction; never computed
		// from a value read outside it.
		_, err = tx.Exec(`
			UPDATE answer SET helpful_count = helpful_count + 1 WHERE id = $1
		`, answerID)
		if err != nil {
			return "", fmt.Errorf("failed to increment helpful count: %w", err)
		}
		action = models.ActionAdded
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit toggle: %w", err)
	}

	return action, nil
}
