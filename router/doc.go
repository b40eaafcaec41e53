// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ method routing.

All application routes live under the /api prefix the mobile client
expects:

	GET  /api/health
	POST /api/users
	POST /api/tracker
	GET  /api/tracker/{userId}
	GET  /api/feed
	POST /api/feed/questions
	GET  /api/feed/questions/{id}/answers
	POST /api/feed/questions/{id}/answers
	POST /api/feed/questions/{qid}/answers/{aid}/helpful

Every application route is wrapped in the logging middleware; CORS is
applied around the whole mux in main.
*/
package router
