// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity handles the anonymous identity model.

Every user is a client-generated opaque identifier. The device that
generated the ID holds the only reference to it; the server persists it
as a key and never verifies it. There are no sessions, tokens, or
passwords anywhere in the system.

Validate is the single shape check applied to every inbound userId before
any transaction begins. NewAnonymousID exists for the seeder, which plays
the role of a device when fabricating demo content.
*/
package identity
