// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL sticks to the dialect shared by Postgres and SQLite: $n
// placeholders, ON CONFLICT upserts, timestamps written from Go.
const schema = `
-- Anonymous user profiles (id is client-generated, never authenticated)
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    age_range TEXT NOT NULL CHECK (age_range IN ('13-14', '15-16', '17-18')),
    email TEXT,
    created_at TIMESTAMP NOT NULL
);

-- Daily tracker entries, at most one per user per day
CREATE TABLE IF NOT EXISTS tracker_entry (
    owner_id TEXT NOT NULL,
    entry_date TEXT NOT NULL,
    is_period_day BOOLEAN NOT NULL,
    mood TEXT,
    symptoms TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (owner_id, entry_date)
);

-- Community questions; answer_count is the only field mutated after creation
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    age_range TEXT NOT NULL,
    category TEXT NOT NULL,
    body TEXT NOT NULL,
    preview TEXT NOT NULL,
    author_id TEXT NOT NULL,
    answer_count INTEGER NOT NULL DEFAULT 0,
    is_expired BOOLEAN NOT NULL DEFAULT FALSE,
    posted_at_ms BIGINT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_age_range ON question(age_range);

CREATE TABLE IF NOT EXISTS answer (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    body TEXT NOT NULL,
    author_id TEXT NOT NULL,
    helpful_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_answer_question ON answer(question_id, helpful_count);

-- Vote ledger: presence of a row means "this user finds this answer helpful".
-- The (user_id, answer_id) primary key is what makes duplicate votes impossible.
CREATE TABLE IF NOT EXISTS vote (
    user_id TEXT NOT NULL,
    answer_id TEXT NOT NULL REFERENCES answer(id) ON DELETE CASCADE,
    question_id TEXT NOT NULL,
    voted_at_ms BIGINT NOT NULL,
    PRIMARY KEY (user_id, answer_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_answer ON vote(answer_id);
`
