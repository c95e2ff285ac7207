package otp

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateCode_Format(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("generate code: %v", err)
		}
		if !ValidCodeFormat(code) {
			t.Fatalf("generated code %q fails its own format check", code)
		}
	}
}

func TestValidCodeFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"0000", true},
		{"1234", true},
		{"9999", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"12 4", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidCodeFormat(c.raw); got != c.want {
			t.Errorf("ValidCodeFormat(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestMemoryStore_PutGetDelete(t *testing.T) {
	store := NewMemoryStore()

	pending := PendingSignup{
		Email:     "a@example.com",
		Code:      "1234",
		ExpiresAt: time.Now().Add(Expiry),
	}
	if err := store.Put("a@example.com", pending); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get("a@example.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Code != "1234" {
		t.Fatalf("expected stored code, got %q", got.Code)
	}

	if err := store.Delete("a@example.com"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get("a@example.com"); !errors.Is(err, ErrPendingNotFound) {
		t.Fatalf("expected ErrPendingNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_EntryExpires(t *testing.T) {
	store := NewMemoryStore()
	store.entries["a@example.com"] = memoryEntry{
		pending:   PendingSignup{Email: "a@example.com", Code: "1234"},
		expiresAt: time.Now().Add(-time.Second),
	}

	if _, err := store.Get("a@example.com"); !errors.Is(err, ErrPendingNotFound) {
		t.Fatalf("expected ErrPendingNotFound for expired entry, got %v", err)
	}
}

func TestMemoryStore_GetUnknownEmail(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get("missing@example.com"); !errors.Is(err, ErrPendingNotFound) {
		t.Fatalf("expected ErrPendingNotFound, got %v", err)
	}
}
