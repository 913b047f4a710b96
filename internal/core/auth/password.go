// Package auth holds the credential primitives: password hashing and
// session token issuance/verification. Both are pure — no storage, no HTTP.
package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt. Each Hash call salts independently, so the
// same plaintext never hashes to the same string twice.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
// Costs outside the valid range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted, one-way digest of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches hash. bcrypt's comparison is
// constant-time over the digest; malformed hash input yields false rather
// than an error, so callers cannot distinguish "bad password" from
// "corrupt record" by behavior.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
