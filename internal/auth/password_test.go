package auth_test

import (
	"testing"

	"github.com/Clara4555/ROOFTY/internal/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !auth.CheckPassword(hash, "hunter2") {
		t.Error("correct password should verify")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password should not verify")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	a, err := auth.HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := auth.HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if auth.CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("malformed hash should never verify")
	}
}
