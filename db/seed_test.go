// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"testing"

	"github.com/evelinecho/cyclespace/db"
	"github.com/evelinecho/cyclespace/testutil"
)

func TestSeed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	if err := db.Seed(conn); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var questions int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM question`).Scan(&questions); err != nil {
		t.Fatalf("Failed to count questions: %v", err)
	}
	if questions != 3 {
		t.Errorf("Expected 3 seeded questions, got %d", questions)
	}

	// Each question's answer_count matches its answer rows
	rows, err := conn.Query(`SELECT id, answer_count FROM question`)
	if err != nil {
		t.Fatalf("Failed to query questions: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			t.Fatalf("Failed to scan question: %v", err)
		}

		var actual int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM answer WHERE question_id = $1`, id).Scan(&actual); err != nil {
			t.Fatalf("Failed to count answers: %v", err)
		}
		if actual != count {
			t.Errorf("Question %s: answer_count %d but %d answer rows", id, count, actual)
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to iterate questions: %v", err)
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	// SetupTestDB already created the schema once; a second run must not fail
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}
