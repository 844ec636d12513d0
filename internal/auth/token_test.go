package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 24*time.Hour)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("issued token is empty")
	}

	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Errorf("verified user id = %d, want 42", userID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issued, err := NewTokenService("secret-a", time.Hour).Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).Verify(issued); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("verify with wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	token, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d parts, want 3", len(parts))
	}
	// swap the payload for one from a token of another user
	other, err := svc.Issue(2)
	if err != nil {
		t.Fatalf("issue other: %v", err)
	}
	tampered := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("verify tampered token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("verify expired token: err = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyRejectsNonHMAC(t *testing.T) {
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign with none: %v", err)
	}

	svc := NewTokenService("test-secret", time.Hour)
	if _, err := svc.Verify(unsigned); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("verify alg=none token: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "Bearer something"} {
		if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("verify %q: err = %v, want ErrInvalidToken", raw, err)
		}
	}
}
