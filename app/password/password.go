package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost keeps interactive logins under a few hundred milliseconds
// while staying expensive to brute force.
const DefaultCost = 12

type Hasher struct{ Cost int }

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{Cost: cost}
}

// Hash produces a salted bcrypt hash; the same plaintext hashes to a
// different output each call.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hashed. Malformed hashes verify
// as false, never as an error.
func (h *Hasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
