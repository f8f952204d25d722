// Package service holds the ports the usecases call into: hashing, tokens,
// push delivery, QR rendering, event publishing and blob storage.
package service

import "github.com/pkg/errors"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for passwords over MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher hashes account passwords and verifies login attempts.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
