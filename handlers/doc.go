// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the cyclespace API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UserHandler: anonymous profile registration (merge-upsert)
  - TrackerHandler: daily tracker entries (wholesale upsert + list)
  - FeedHandler: community questions (age-partitioned list + post)
  - AnswerHandler: answers under a question (list + transactional post)
  - HelpfulHandler: the helpful-vote toggle

Handlers are created via constructor functions that accept *sql.DB and Config:

	feedHandler := handlers.NewFeedHandler(db, cfg)

# Counter Consistency

Two operations mutate denormalized counters and both run as single
transactions with relative in-transaction updates:

postAnswer (answers.go) inserts the answer row and increments the parent
question's answer_count together, so the count always matches the number
of answer rows.

toggleHelpful (helpful.go) flips vote existence and adjusts helpful_count
together. The remove path floors the counter at zero. A same-user toggle
race is resolved by the vote table's (user_id, answer_id) primary key: the
losing insert affects zero rows and the whole attempt re-runs, so the
second tap is observed as a remove, never a double count.

# Validation

Every handler validates its input (identity.Validate on userIds, enum and
format checks from models) before any transaction begins, so a rejected
request leaves no partial state.
*/
package handlers
