package crypto

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when none is configured.
// Hashing is deliberately slow at this cost; do not lower it outside tests.
const DefaultCost = 12

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// HashPassword returns a bcrypt hash of the password. The salt is randomized
// on every call, so two hashes of the same password never match each other.
func (h PasswordHasher) HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), h.cost)
}

// ComparePasswords reports whether password matches the stored hash.
// Comparison is constant-time inside bcrypt; a malformed hash yields false,
// never an error.
func (h PasswordHasher) ComparePasswords(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
