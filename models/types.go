// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"regexp"
	"time"
)

// Age range buckets used to partition the community feed
const (
	AgeRange13to14 = "13-14"
	AgeRange15to16 = "15-16"
	AgeRange17to18 = "17-18"
)

// Tracker moods
const (
	MoodOkay      = "okay"
	MoodLow       = "low"
	MoodAnxious   = "anxious"
	MoodIrritable = "irritable"
)

// Toggle outcomes
const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// MaxAnswersPerPage bounds how many answers a single question returns
const MaxAnswersPerPage = 20

// PreviewLimit is the maximum preview length before truncation
const PreviewLimit = 80

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidAgeRange reports whether s is one of the three feed buckets
func ValidAgeRange(s string) bool {
	switch s {
	case AgeRange13to14, AgeRange15to16, AgeRange17to18:
		return true
	}
	return false
}

// ValidMood reports whether s is a known tracker mood
func ValidMood(s string) bool {
	switch s {
	case MoodOkay, MoodLow, MoodAnxious, MoodIrritable:
		return true
	}
	return false
}

// ValidDate reports whether s matches YYYY-MM-DD
func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// MakePreview derives the feed preview for a question body: text longer
// than PreviewLimit runes is cut there and marked with an ellipsis.
func MakePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLimit {
		return text
	}
	return string(runes[:PreviewLimit]) + "..."
}

// Request types

type RegisterUserRequest struct {
	UID      string  `json:"uid"`
	AgeRange string  `json:"ageRange"`
	Email    *string `json:"email,omitempty"`
}

type SaveEntryRequest struct {
	UserID      string   `json:"userId"`
	Date        string   `json:"date"`
	IsPeriodDay bool     `json:"isPeriodDay"`
	Mood        *string  `json:"mood"`
	Symptoms    []string `json:"symptoms"`
}

type PostQuestionRequest struct {
	UserID   string `json:"userId"`
	AgeRange string `json:"ageRange"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

type PostAnswerRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

type ToggleHelpfulRequest struct {
	UserID string `json:"userId"`
}

// Response types

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type RegisterUserResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

type SaveEntryResponse struct {
	Message string `json:"message"`
	Date    string `json:"date"`
}

type PostAnswerResponse struct {
	Message string `json:"message"`
}

type ToggleHelpfulResponse struct {
	Message string `json:"message"`
	Action  string `json:"action"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	AgeRange  string    `json:"ageRange"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type TrackerEntry struct {
	OwnerID     string    `json:"userId"`
	Date        string    `json:"date"`
	IsPeriodDay bool      `json:"isPeriodDay"`
	Mood        *string   `json:"mood"`
	Symptoms    []string  `json:"symptoms"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Question struct {
	ID          string    `json:"id"`
	AgeRange    string    `json:"ageRange"`
	Category    string    `json:"category"`
	Text        string    `json:"text"`
	PreviewText string    `json:"previewText"`
	AuthorID    string    `json:"userId"`
	AnswerCount int       `json:"answerCount"`
	IsExpired   bool      `json:"isExpired"`
	Timestamp   int64     `json:"timestamp"` // creation epoch ms, clients sort the feed by this
	CreatedAt   time.Time `json:"createdAt"`
	PostedAgo   string    `json:"postedAgo,omitempty"`
}

type Answer struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"questionId"`
	Text         string    `json:"text"`
	AuthorID     string    `json:"userId"`
	HelpfulCount int       `json:"helpfulCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Vote struct {
	UserID     string `json:"userId"`
	AnswerID   string `json:"answerId"`
	QuestionID string `json:"questionId"`
	Timestamp  int64  `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
