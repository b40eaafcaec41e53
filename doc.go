// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the cyclespace API server.

cyclespace is the companion backend for a period-tracking mobile app:
daily tracker entries, plus an anonymous community Q&A feed partitioned
into three age-range buckets, where answers can be marked "helpful".

# Starting the Server

The server requires a database URL, from the environment (a .env file is
picked up automatically) or CLI flags:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run .

Or with flags:

	go run . -p 5000 -d cyclespace.db -t sqlite -seed

# Configuration

  - DATABASE_URL (-d): connection string (required)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PORT (-p): server port (default: 5000)
  - -seed: insert demo feed content on startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, tracker, feed, answers, helpful)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types, validation
  - identity: anonymous ID model
  - db: Schema creation and demo seeding
  - cliparse: Configuration parsing

The vote toggle and answer submission run as store transactions so the
denormalized counters (answerCount, helpfulCount) stay consistent with
their authoritative row sets under concurrent requests. See the handlers
package documentation.
*/
package main
