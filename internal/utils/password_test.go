package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-enough")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-enough" {
		t.Fatalf("hash must not equal the plain password")
	}
	if !CheckPasswordHash("s3cret-enough", hash) {
		t.Fatalf("correct password must verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatalf("wrong password must not verify")
	}
}
