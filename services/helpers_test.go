package services

import (
	"context"
	"testing"

	"maharaja-dine-service/config"
	"maharaja-dine-service/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		StorageBackend: config.BackendMemory,
		BlobKeyPrefix:  "maharaja",
		SessionSecret:  "test-secret",
		BcryptCost:     4, // bcrypt minimum keeps the tests fast
	}
}

func newTestAuth(t *testing.T, store storage.BlobStore, diag Diagnostic) *AuthService {
	t.Helper()
	cfg := testConfig()
	auth, err := NewAuthService(context.Background(), store, NewSessionTokenService(cfg), cfg, diag)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return auth
}

func newTestMenu(t *testing.T, store storage.BlobStore, diag Diagnostic) *MenuService {
	t.Helper()
	menu, err := NewMenuService(context.Background(), store, testConfig(), diag)
	if err != nil {
		t.Fatalf("NewMenuService: %v", err)
	}
	return menu
}

func newTestBookings(t *testing.T, store storage.BlobStore, diag Diagnostic) *BookingService {
	t.Helper()
	bookings, err := NewBookingService(context.Background(), store, testConfig(), diag)
	if err != nil {
		t.Fatalf("NewBookingService: %v", err)
	}
	return bookings
}
