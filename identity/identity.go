// Copyright (c) 2025 Eveline Cho.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyID   = errors.New("user id is required")
	ErrTooLongID = errors.New("user id exceeds maximum length")
)

// MaxIDLength bounds client-supplied identifiers. Real clients send UUIDs;
// the cap just keeps arbitrary blobs out of the key space.
const MaxIDLength = 128

// NewAnonymousID mints a fresh opaque identifier. Production clients
// generate their own on-device; the server only mints IDs when seeding.
func NewAnonymousID() string {
	return "anon_" + uuid.NewString()
}

// Validate checks a client-supplied anonymous ID. The ID is opaque and
// never authenticated, so this is a shape check, not a trust check.
func Validate(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if len(id) > MaxIDLength {
		return ErrTooLongID
	}
	return nil
}
