// file: internals/features/users/auth/helper/password_test.go
package helper

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "rahasia-banget" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "rahasia-banget") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "salah") {
		t.Fatal("wrong password accepted")
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	a := GenerateRandomPassword()
	b := GenerateRandomPassword()
	if len(a) != 48 {
		t.Fatalf("len = %d, want 48 hex chars", len(a))
	}
	if a == b {
		t.Fatal("two generated passwords must differ")
	}
}
