package confirm

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/gearmart/orderdesk/internal/domain/errors"
)

func TestNewBcryptVerifierDefaultCost(t *testing.T) {
	v, err := NewBcryptVerifier("CANCEL", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", v.cost)
	}
}

func TestVerify(t *testing.T) {
	v, err := NewBcryptVerifier("CANCEL", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := v.Verify("CANCEL"); err != nil {
		t.Fatalf("expected matching phrase to pass, got %v", err)
	}

	if err := v.Verify("cancel"); !errors.Is(err, domainErrors.ErrInvalidConfirmation) {
		t.Fatalf("expected invalid confirmation error, got %v", err)
	}
	if err := v.Verify(""); !errors.Is(err, domainErrors.ErrInvalidConfirmation) {
		t.Fatalf("expected invalid confirmation error for empty phrase, got %v", err)
	}
}
