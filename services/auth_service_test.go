package services

import (
	"context"
	"testing"

	"maharaja-dine-service/models"
	"maharaja-dine-service/storage"
	"maharaja-dine-service/utils"
)

func TestLoginEmptyStore(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, storage.NewMemoryBlobStore(), nil)

	ok, err := auth.Login(ctx, "a@x.com", "p", models.RoleUser)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if ok {
		t.Error("login against empty account list succeeded")
	}
	if auth.CurrentUser() != nil {
		t.Error("failed login established a session")
	}
}

func TestSignupEstablishesSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryBlobStore()
	auth := newTestAuth(t, store, nil)

	ok, err := auth.Signup(ctx, "Ann", "a@x.com", "p", models.RoleUser)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if !ok {
		t.Fatal("signup with fresh email failed")
	}

	user := auth.CurrentUser()
	if user == nil {
		t.Fatal("signup did not establish a session")
	}
	if user.Name != "Ann" || user.Email != "a@x.com" || user.Role != models.RoleUser {
		t.Errorf("session user = %+v", user)
	}
	if user.ID == "" {
		t.Error("session user has no id")
	}
}

func TestSignupHashesCredential(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryBlobStore()
	auth := newTestAuth(t, store, nil)

	if ok, _ := auth.Signup(ctx, "Ann", "a@x.com", "p", models.RoleUser); !ok {
		t.Fatal("signup failed")
	}

	var accounts []models.Account
	found, err := store.Get(ctx, "maharaja_users", &accounts)
	if err != nil || !found {
		t.Fatalf("users blob: found=%v err=%v", found, err)
	}
	if len(accounts) != 1 {
		t.Fatalf("accounts = %d, want 1", len(accounts))
	}
	if accounts[0].PasswordHash == "p" {
		t.Error("credential persisted in plaintext")
	}
	if !utils.CheckPasswordHash("p", accounts[0].PasswordHash) {
		t.Error("persisted hash does not verify against the password")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, storage.NewMemoryBlobStore(), nil)

	if ok, _ := auth.Signup(ctx, "Ann", "a@x.com", "p", models.RoleUser); !ok {
		t.Fatal("first signup failed")
	}

	// Same email is rejected under any role.
	for _, role := range []string{models.RoleUser, models.RoleAdmin} {
		ok, err := auth.Signup(ctx, "Other", "a@x.com", "q", role)
		if err != nil {
			t.Fatalf("Signup(role=%s): %v", role, err)
		}
		if ok {
			t.Errorf("duplicate signup with role %s succeeded", role)
		}
	}
	if auth.AccountCount() != 1 {
		t.Errorf("account count = %d after rejected signups, want 1", auth.AccountCount())
	}
}

func TestLoginExactMatch(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, storage.NewMemoryBlobStore(), nil)

	if ok, _ := auth.Signup(ctx, "Ann", "a@x.com", "p", models.RoleUser); !ok {
		t.Fatal("signup failed")
	}
	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		role     string
		want     bool
	}{
		{"all fields match", "a@x.com", "p", models.RoleUser, true},
		{"wrong email", "b@x.com", "p", models.RoleUser, false},
		{"wrong password", "a@x.com", "q", models.RoleUser, false},
		{"wrong role", "a@x.com", "p", models.RoleAdmin, false},
	}
	for _, tt := range tests {
		got, err := auth.Login(ctx, tt.email, tt.password, tt.role)
		if err != nil {
			t.Fatalf("%s: Login: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: login = %v, want %v", tt.name, got, tt.want)
		}
		_ = auth.Logout(ctx)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, storage.NewMemoryBlobStore(), nil)

	if ok, _ := auth.Signup(ctx, "Ann", "a@x.com", "p", models.RoleUser); !ok {
		t.Fatal("signup failed")
	}

	for i := 0; i < 2; i++ {
		if err := auth.Logout(ctx); err != nil {
			t.Fatalf("Logout #%d: %v", i+1, err)
		}
		if auth.CurrentUser() != nil {
			t.Fatalf("session still active after logout #%d", i+1)
		}
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryBlobStore()

	auth := newTestAuth(t, store, nil)
	if ok, _ := auth.Signup(ctx, "Ann", "a@x.com", "p", models.RoleUser); !ok {
		t.Fatal("signup failed")
	}
	want := auth.CurrentUser()

	// A fresh service over the same store restores the persisted session.
	restarted := newTestAuth(t, store, nil)
	got := restarted.CurrentUser()
	if got == nil {
		t.Fatal("restarted service has no session")
	}
	if *got != *want {
		t.Errorf("restored session = %+v, want %+v", got, want)
	}
}

func TestSessionRestoreRejectsTamperedRecord(t *testing.T) {
	store := storage.NewMemoryBlobStore()

	var diagnosed []string
	diag := func(key string, err error) {
		diagnosed = append(diagnosed, key)
	}

	// A session record signed with a different secret must not restore.
	store.PutRaw("maharaja_user", []byte(`"eyJhbGciOiJIUzI1NiJ9.e30.bogus"`))
	auth := newTestAuth(t, store, diag)

	if auth.CurrentUser() != nil {
		t.Error("tampered session record restored a session")
	}
	if len(diagnosed) != 1 || diagnosed[0] != "maharaja_user" {
		t.Errorf("diagnostics = %v, want one report for maharaja_user", diagnosed)
	}
}

func TestCorruptAccountsBlobFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryBlobStore()
	store.PutRaw("maharaja_users", []byte("{not json"))

	var diagnosed []string
	auth := newTestAuth(t, store, func(key string, err error) {
		diagnosed = append(diagnosed, key)
	})

	if auth.AccountCount() != 0 {
		t.Errorf("account count = %d over corrupt blob, want 0", auth.AccountCount())
	}
	if len(diagnosed) == 0 {
		t.Error("corrupt accounts blob was not reported")
	}

	// The store still works after the fallback.
	if ok, err := auth.Signup(ctx, "Ann", "a@x.com", "p", models.RoleUser); err != nil || !ok {
		t.Errorf("signup after fallback: ok=%v err=%v", ok, err)
	}
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t, storage.NewMemoryBlobStore(), nil)

	if _, err := auth.Signup(ctx, "Ann", "a@x.com", "p", "superadmin"); err == nil {
		t.Error("signup with unknown role did not error")
	}
	if auth.AccountCount() != 0 {
		t.Error("rejected signup changed the account list")
	}
}
