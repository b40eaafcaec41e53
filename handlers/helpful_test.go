// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evelinecho/cyclespace/models"
	"github.com/evelinecho/cyclespace/testutil"
)

func toggleRequest(questionID, answerID, userID string) *http.Request {
	req := testutil.MakeRequest("POST",
		"/api/feed/questions/"+questionID+"/answers/"+answerID+"/helpful",
		models.ToggleHelpfulRequest{UserID: userID}, nil)
	req.SetPathValue("qid", questionID)
	req.SetPathValue("aid", answerID)
	return req
}

// TestToggleAddRemoveAdd walks the full toggle cycle: add creates the vote
// and bumps the counter, a second toggle removes both, a third recreates.
func TestToggleAddRemoveAdd(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHelpfulHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, models.AgeRange15to16)
	questionID := testutil.CreateTestQuestion(t, db, models.AgeRange15to16, "Is this normal?")
	answerID := testutil.AddTestAnswer(t, db, questionID, "Completely normal.")

	steps := []struct {
		wantAction string
		wantCount  int
		wantVotes  int
	}{
		{models.ActionAdded, 1, 1},
		{models.ActionRemoved, 0, 0},
		{models.ActionAdded, 1, 1},
	}

	for i, step := range steps {
		w := httptest.NewRecorder()
		handler.Toggle(w, toggleRequest(questionID, answerID, userID))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ToggleHelpfulResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Action != step.wantAction {
			t.Errorf("Toggle %d: expected action %q, got %q", i+1, step.wantAction, resp.Action)
		}

		if got := testutil.HelpfulCount(t, db, answerID); got != step.wantCount {
			t.Errorf("Toggle %d: expected helpful_count %d, got %d", i+1, step.wantCount, got)
		}
		if got := testutil.VoteCount(t, db, answerID); got != step.wantVotes {
			t.Errorf("Toggle %d: expected %d vote rows, got %d", i+1, step.wantVotes, got)
		}
	}
}

func TestTogglePairIsNetNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHelpfulHandler(db, cfg)

	questionID := testutil.CreateTestQuestion(t, db, models.AgeRange13to14, "Why so tired?")
	answerID := testutil.AddTestAnswer(t, db, questionID, "Hormones.")

	// Someone else's standing vote gives a non-zero baseline
	other := testutil.CreateTestUser(t, db, models.AgeRange13to14)
	testutil.AddTestVote(t, db, other, questionID, answerID)

	userID := testutil.CreateTestUser(t, db, models.AgeRange13to14)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.Toggle(w, toggleRequest(questionID, answerID, userID))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	if got := testutil.HelpfulCount(t, db, answerID); got != 1 {
		t.Errorf("Expected helpful_count back at 1 after add+remove, got %d", got)
	}
	if got := testutil.VoteCount(t, db, answerID); got != 1 {
		t.Errorf("Expected 1 vote row after add+remove, got %d", got)
	}
}

// TestToggleCounterFloor simulates ledger/counter drift: a vote row exists
// but the counter already reads zero. Removing must not go negative.
func TestToggleCounterFloor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHelpfulHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, models.AgeRange17to18)
	questionID := testutil.CreateTestQuestion(t, db, models.AgeRange17to18, "Cramps at night?")
	answerID := testutil.AddTestAnswer(t, db, questionID, "Heating pad.")

	testutil.AddTestVote(t, db, userID, questionID, answerID)
	if _, err := db.Exec(`UPDATE answer SET helpful_count = 0 WHERE id = $1`, answerID); err != nil {
		t.Fatalf("Failed to force counter drift: %v", err)
	}

	w := httptest.NewRecorder()
	handler.Toggle(w, toggleRequest(questionID, answerID, userID))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ToggleHelpfulResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Action != models.ActionRemoved {
		t.Errorf("Expected action %q, got %q", models.ActionRemoved, resp.Action)
	}

	if got := testutil.HelpfulCount(t, db, answerID); got != 0 {
		t.Errorf("Expected helpful_count floored at 0, got %d", got)
	}
}

func TestToggleAnswerNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHelpfulHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, models.AgeRange15to16)
	questionID := testutil.CreateTestQuestion(t, db, models.AgeRange15to16, "Is this normal?")

	w := httptest.NewRecorder()
	handler.Toggle(w, toggleRequest(questionID, "no-such-answer", userID))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

// TestToggleAnswerUnderWrongQuestion: the answer must exist under the
// question named in the path, not just anywhere.
func TestToggleAnswerUnderWrongQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHelpfulHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, models.AgeRange15to16)
	q1 := testutil.CreateTestQuestion(t, db, models.AgeRange15to16, "First question")
	q2 := testutil.CreateTestQuestion(t, db, models.AgeRange15to16, "Second question")
	answerID := testutil.AddTestAnswer(t, db, q1, "Answer to the first.")

	w := httptest.NewRecorder()
	handler.Toggle(w, toggleRequest(q2, answerID, userID))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	if got := testutil.VoteCount(t, db, answerID); got != 0 {
		t.Errorf("Expected no vote rows after rejected toggle, got %d", got)
	}
}

func TestToggleMissingUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHelpfulHandler(db, cfg)

	questionID := testutil.CreateTestQuestion(t, db, models.AgeRange15to16, "Is this normal?")
	answerID := testutil.AddTestAnswer(t, db, questionID, "Yes.")

	w := httptest.NewRecorder()
	handler.Toggle(w, toggleRequest(questionID, answerID, ""))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	if got := testutil.HelpfulCount(t, db, answerID); got != 0 {
		t.Errorf("Expected helpful_count untouched, got %d", got)
	}
}

// TestToggleRepeatedRemovesNeverNegative hammers the remove path with a
// drifted counter to confirm the floor holds across invocations.
func TestToggleRepeatedRemovesNeverNegative(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewHelpfulHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, models.AgeRange13to14)
	questionID := testutil.CreateTestQuestion(t, db, models.AgeRange13to14, "Is this normal?")
	answerID := testutil.AddTestAnswer(t, db, questionID, "Yes.")

	for i := 0; i < 4; i++ {
		// Reinstate the ledger row with the counter pinned at zero, so
		// every iteration exercises the remove-with-drift path.
		testutil.AddTestVote(t, db, userID, questionID, answerID)
		if _, err := db.Exec(`UPDATE answer SET helpful_count = 0 WHERE id = $1`, answerID); err != nil {
			t.Fatalf("Failed to force counter drift: %v", err)
		}

		w := httptest.NewRecorder()
		handler.Toggle(w, toggleRequest(questionID, answerID, userID))
		testutil.AssertStatus(t, w, http.StatusOK)

		if got := testutil.HelpfulCount(t, db, answerID); got < 0 {
			t.Fatalf("Iteration %d: helpful_count went negative: %d", i, got)
		}
	}
}
