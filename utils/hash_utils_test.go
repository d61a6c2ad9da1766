package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPasswordHash("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordCostFallback(t *testing.T) {
	// Out-of-range costs silently use the bcrypt default.
	for _, cost := range []int{-1, 0, 99} {
		hash, err := HashPassword("p", cost)
		if err != nil {
			t.Fatalf("HashPassword(cost=%d): %v", cost, err)
		}
		if got, err := bcrypt.Cost([]byte(hash)); err != nil || got != bcrypt.DefaultCost {
			t.Errorf("cost %d produced hash cost %d (err=%v), want %d", cost, got, err, bcrypt.DefaultCost)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty id")
		}
		if seen[id] {
			t.Fatalf("NewID repeated %s", id)
		}
		seen[id] = true
	}
}
