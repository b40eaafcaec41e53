// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evelinecho/cyclespace/identity"
	"github.com/evelinecho/cyclespace/models"
)

type seedAnswer struct {
	text         string
	helpfulCount int
}

type seedQuestion struct {
	ageRange string
	category string
	text     string
	age      time.Duration // how long ago it was posted
	answers  []seedAnswer
}

var seedQuestions = []seedQuestion{
	{
		ageRange: models.AgeRange15to16,
		category: "Periods",
		text:     "Is it normal for periods to be irregular in the first year?",
		age:      time.Hour,
		answers: []seedAnswer{
			{"Yes, totally normal! It can take a year or two for your cycle to become more regular. Your body is still figuring things out.", 12},
			{"It was like that for me too. Some months were closer together, some further apart. It eventually evened out.", 8},
		},
	},
	{
		ageRange: models.AgeRange13to14,
		category: "Symptoms",
		text:     "Why do I feel so tired the day before my period starts?",
		age:      2 * time.Hour,
		answers: []seedAnswer{
			{"Hormones can make you feel more tired. It's really common and nothing to worry about. Rest when you need to.", 5},
		},
	},
	{
		ageRange: models.AgeRange17to18,
		category: "Managing",
		text:     "What do you do when cramps wake you up at night?",
		age:      24 * time.Hour,
		answers: []seedAnswer{
			{"I keep a heating pad by my bed. Sometimes just moving around gently helps too.", 15},
			{"Drinking water and trying to relax my body usually helps me. Deep breathing too.", 7},
		},
	},
}

// Seed populates the feed with demo questions and answers. Each call adds
// a fresh batch under newly minted anonymous authors.
func Seed(db *sql.DB) error {
	now := time.Now().UTC()
	asker := identity.NewAnonymousID()
	helper := identity.NewAnonymousID()

	for _, u := range []string{asker, helper} {
		_, err := db.Exec(`
			INSERT INTO users (id, age_range, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`, u, models.AgeRange15to16, now)
		if err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}

	for _, q := range seedQuestions {
		questionID := uuid.NewString()
		postedAt := now.Add(-q.age)

		_, err := db.Exec(`
			INSERT INTO question (id, age_range, category, body, preview, author_id, answer_count, is_expired, posted_at_ms, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $9)
		`, questionID, q.ageRange, q.category, q.text, models.MakePreview(q.text),
			asker, len(q.answers), postedAt.UnixMilli(), postedAt)
		if err != nil {
			return fmt.Errorf("failed to seed question: %w", err)
		}

		for _, a := range q.answers {
			_, err := db.Exec(`
				INSERT INTO answer (id, question_id, body, author_id, helpful_count, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, uuid.NewString(), questionID, a.text, helper, a.helpfulCount, postedAt)
			if err != nil {
				return fmt.Errorf("failed to seed answer: %w", err)
			}
		}
	}

	return nil
}
