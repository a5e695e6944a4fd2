package confirm

import (
	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/gearmart/orderdesk/internal/domain/errors"
)

// Verifier gates destructive workflows behind a typed confirmation phrase.
// Injected as a capability so the literal-comparison placeholder can be
// replaced by a real re-authentication step without touching the workflows.
type Verifier interface {
	Verify(phrase string) error
}

// BcryptVerifier holds only a bcrypt hash of the required phrase, never the
// phrase itself.
type BcryptVerifier struct {
	hash []byte
	cost int
}

// NewBcryptVerifier hashes the configured phrase once at construction time.
func NewBcryptVerifier(phrase string, cost int) (*BcryptVerifier, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(phrase), cost)
	if err != nil {
		return nil, err
	}
	return &BcryptVerifier{hash: hash, cost: cost}, nil
}

// Verify compares the typed phrase against the stored hash.
func (v *BcryptVerifier) Verify(phrase string) error {
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(phrase)); err != nil {
		return domainErrors.ErrInvalidConfirmation
	}
	return nil
}
