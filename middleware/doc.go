// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers.

  - WithLogging: slog request/completion logging with duration
  - JSONResponse / ErrorResponse: uniform JSON envelopes
  - ParseJSONBody: request body decoding
  - CORS: permissive cross-origin support for the Expo dev client

ErrorResponse is the only path through which failures reach a client, so
internal store errors never leak beyond a short generic message.
*/
package middleware
