// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies user passwords.
package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned by Hash for passwords over 72 bytes.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrPasswordMismatch is returned by Compare when the password does not
	// match the hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// PasswordHasher turns passwords into opaque hashes and checks them.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// ErrPasswordMismatch otherwise.
	Compare(hash, password string) error

	// CompareDummy spends about as long as Compare does on a real hash. It is
	// used when there is no user to compare against, so that an unknown
	// login and a wrong password cannot be told apart by timing.
	CompareDummy(password string)
}
