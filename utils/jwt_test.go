package utils

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret-key-for-testing-only"

func TestGenerateAndParseJWT(t *testing.T) {
	tok, err := GenerateJWT(testSecret, "uid-123", "a@example.com", "Ana", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(testSecret, tok)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UID() != "uid-123" || claims.Email != "a@example.com" || claims.Name != "Ana" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseJWT_Rejects(t *testing.T) {
	good, _ := GenerateJWT(testSecret, "uid-123", "", "", time.Hour)
	expired, _ := GenerateJWT(testSecret, "uid-123", "", "", -time.Minute)
	noSubject, _ := GenerateJWT(testSecret, "", "a@example.com", "", time.Hour)

	cases := map[string]struct{ secret, token string }{
		"wrong secret": {"other-secret", good},
		"expired":      {testSecret, expired},
		"no subject":   {testSecret, noSubject},
		"garbage":      {testSecret, "not.a.jwt"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseJWT(c.secret, c.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}

	if _, err := ParseJWT("", good); err == nil {
		t.Error("empty secret should fail")
	}
}
