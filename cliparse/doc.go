// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win over environment variables; both fall back to
defaults where one exists.

	-p / PORT           server port (default 5000)
	-d / DATABASE_URL   database connection string (required)
	-t / DATABASE_TYPE  sqlite or postgres (default sqlite)
	-seed               insert demo feed content on startup

main loads a .env file (via godotenv) before parsing, so local setups
can keep DATABASE_URL out of their shell profile.
*/
package cliparse
