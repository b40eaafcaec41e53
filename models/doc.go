// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and API request/response types for
the cyclespace backend.

# Domain Types

  - User: anonymous profile keyed by a client-generated opaque ID
  - TrackerEntry: one per (user, date), upserted wholesale on save
  - Question: community question partitioned by age range bucket
  - Answer: child of exactly one question
  - Vote: one per (user, answer); existence means "marked helpful"

# Denormalized Counters

Question.AnswerCount and Answer.HelpfulCount are cached aggregates kept
consistent with the answer and vote tables by the transactional handlers.
They exist so feed reads never fan out into counting queries.

# Validation

JSON field names match the mobile client's wire format (camelCase). Enum
and format checks live here so every handler validates the same way:

	models.ValidAgeRange("15-16") // true
	models.ValidMood("anxious")   // true
	models.ValidDate("2025-03-01") // true
*/
package models
