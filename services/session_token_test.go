package services

import (
	"testing"

	"maharaja-dine-service/models"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tokens := NewSessionTokenService(testConfig())

	want := models.User{ID: "u1", Email: "a@x.com", Name: "Ann", Role: models.RoleAdmin}
	token, err := tokens.Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := tokens.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *got != want {
		t.Errorf("decoded user = %+v, want %+v", got, want)
	}
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	tokens := NewSessionTokenService(testConfig())

	other := testConfig()
	other.SessionSecret = "different-secret"
	otherTokens := NewSessionTokenService(other)

	token, err := otherTokens.Encode(models.User{ID: "u1", Email: "a@x.com", Name: "Ann", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, err := tokens.Decode(token); err == nil {
		t.Error("token signed with another secret decoded")
	}
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	tokens := NewSessionTokenService(testConfig())

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Decode(token); err == nil {
			t.Errorf("Decode(%q) succeeded", token)
		}
	}
}
