// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/evelinecho/cyclespace/cliparse"
	"github.com/evelinecho/cyclespace/handlers"
	"github.com/evelinecho/cyclespace/middleware"
	"github.com/evelinecho/cyclespace/models"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	trackerHandler := handlers.NewTrackerHandler(db, cfg)
	feedHandler := handlers.NewFeedHandler(db, cfg)
	answerHandler := handlers.NewAnswerHandler(db, cfg)
	helpfulHandler := handlers.NewHelpfulHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		})
	})

	// Profile and tracker
	mux.HandleFunc("POST /api/users", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /api/tracker", middleware.WithLogging(trackerHandler.Save))
	mux.HandleFunc("GET /api/tracker/{userId}", middleware.WithLogging(trackerHandler.List))

	// Community feed
	mux.HandleFunc("GET /api/feed", middleware.WithLogging(feedHandler.List))
	mux.HandleFunc("POST /api/feed/questions", middleware.WithLogging(feedHandler.Post))
	mux.HandleFunc("GET /api/feed/questions/{id}/answers", middleware.WithLogging(answerHandler.List))
	mux.HandleFunc("POST /api/feed/questions/{id}/answers", middleware.WithLogging(answerHandler.Post))
	mux.HandleFunc("POST /api/feed/questions/{qid}/answers/{aid}/helpful", middleware.WithLogging(helpfulHandler.Toggle))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cyclespace API v1"))
	})

	return mux
}
