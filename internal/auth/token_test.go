// ABOUTME: Unit tests for token issuance and verification
// ABOUTME: Tests round-trips, expiry windows, tampering, and secret handling

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testSecret = []byte("test-secret-key-for-token-signing")

func TestNewTokenCodec_EmptySecret(t *testing.T) {
	if _, err := NewTokenCodec(nil); err == nil {
		t.Error("NewTokenCodec(nil) should fail")
	}
	if _, err := NewTokenCodec([]byte{}); err == nil {
		t.Error("NewTokenCodec(empty) should fail")
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec, err := NewTokenCodec(testSecret)
	if err != nil {
		t.Fatalf("NewTokenCodec() error = %v", err)
	}

	token, err := codec.Issue("42", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "42")
	}
	if !claims.NotBefore.Equal(claims.IssuedAt) {
		t.Errorf("NotBefore = %v, want same as IssuedAt %v", claims.NotBefore, claims.IssuedAt)
	}
	wantExpiry := claims.IssuedAt.Add(time.Hour)
	if !claims.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", claims.ExpiresAt, wantExpiry)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec, _ := NewTokenCodec(testSecret)

	// Issue a token that expired an hour ago
	token, err := codec.Issue("42", -time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = codec.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestTokenCodec_Invalid(t *testing.T) {
	codec, _ := NewTokenCodec(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-real-token"},
		{name: "malformed JWT", token: "header.payload.signature"},
		{
			name: "wrong secret",
			token: func() string {
				other, _ := NewTokenCodec([]byte("a-different-secret-entirely"))
				token, _ := other.Issue("42", time.Hour)
				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token)
			if err == nil {
				t.Fatal("Verify() should have returned an error")
			}
			if errors.Is(err, ErrExpiredToken) {
				t.Errorf("Verify() = ErrExpiredToken, want invalid-class error")
			}
		})
	}
}

func TestTokenCodec_Tampered(t *testing.T) {
	codec, _ := NewTokenCodec(testSecret)

	token, err := codec.Issue("42", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flipping any byte of the token must never verify. Walk a sample of
	// positions across header, payload, and signature.
	for i := 0; i < len(token); i += 7 {
		if token[i] == '.' {
			continue
		}
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == token {
			continue
		}

		if _, err := codec.Verify(string(mutated)); err == nil {
			t.Fatalf("Verify() accepted token tampered at byte %d", i)
		}
	}
}

func TestTokenCodec_MissingSubject(t *testing.T) {
	codec, _ := NewTokenCodec(testSecret)

	token, err := codec.Issue("", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = codec.Verify(token)
	if !errors.Is(err, ErrMissingClaim) {
		t.Errorf("Verify() error = %v, want ErrMissingClaim", err)
	}
}

func TestTokenCodec_TokenShape(t *testing.T) {
	codec, _ := NewTokenCodec(testSecret)

	token, err := codec.Issue("42", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if strings.Count(token, ".") != 2 {
		t.Errorf("token %q is not a three-part JWT", token)
	}
}
