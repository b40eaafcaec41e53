// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns schema creation and demo seeding.

# Schema

CreateSchema is idempotent and runs on every startup:

	if err := db.CreateSchema(dbConn); err != nil { ... }

Tables: users, tracker_entry, question, answer, vote. The vote table's
composite primary key (user_id, answer_id) enforces one helpful-vote per
user per answer at the store level, so concurrent vote creation races
resolve on the key constraint rather than in application logic.

# Seeding

Seed inserts a handful of demo questions and answers (one per age bucket)
so a fresh install has a non-empty feed. It is run behind the -seed flag
and may be invoked repeatedly; each run adds a new batch, matching how
the original seeding tool behaved.
*/
package db
