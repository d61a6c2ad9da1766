package services

import (
	"context"
	"errors"
	"fmt"

	"maharaja-dine-service/config"
	"maharaja-dine-service/models"
	"maharaja-dine-service/storage"
	"maharaja-dine-service/utils"
)

// AuthService owns the registered-account list and the active session.
// Construction loads both from the blob store; every mutation writes the
// affected blob back in full.
type AuthService struct {
	store  storage.BlobStore
	tokens *SessionTokenService
	cfg    *config.Config
	diag   Diagnostic

	accounts []models.Account
	current  *models.User
}

// NewAuthService creates the account store and restores any persisted
// session. The session record is restored when its signature verifies,
// without re-checking it against the account list: a session outlives later
// changes to its account. A nil diag falls back to warning-level logs.
func NewAuthService(ctx context.Context, store storage.BlobStore, tokens *SessionTokenService, cfg *config.Config, diag Diagnostic) (*AuthService, error) {
	if diag == nil {
		diag = defaultDiagnostic
	}
	s := &AuthService{store: store, tokens: tokens, cfg: cfg, diag: diag}

	usersKey := s.key(storage.KeyUsers)
	var accounts []models.Account
	if _, err := store.Get(ctx, usersKey, &accounts); err != nil {
		if !errors.Is(err, storage.ErrCorruptBlob) {
			return nil, err
		}
		diag(usersKey, err)
		accounts = nil
	}
	s.accounts = accounts

	sessionKey := s.key(storage.KeySession)
	var token string
	found, err := store.Get(ctx, sessionKey, &token)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptBlob) {
			return nil, err
		}
		diag(sessionKey, err)
	} else if found {
		user, derr := tokens.Decode(token)
		if derr != nil {
			diag(sessionKey, derr)
		} else {
			s.current = user
		}
	}

	return s, nil
}

// Login checks email, password and role against the registered accounts and
// establishes the session on a full match. The boolean carries the outcome;
// a failed login reveals nothing about which field was wrong. The error is
// reserved for storage faults.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (bool, error) {
	for _, acct := range s.accounts {
		if acct.Email != email || acct.Role != role {
			continue
		}
		if !utils.CheckPasswordHash(password, acct.PasswordHash) {
			continue
		}

		user := acct.User()
		if err := s.persistSession(ctx, user); err != nil {
			return false, err
		}
		s.current = &user
		return true, nil
	}
	return false, nil
}

// Signup registers a new account and logs it in. It returns false when the
// email is already registered under any role; email is the uniqueness key.
func (s *AuthService) Signup(ctx context.Context, name, email, password, role string) (bool, error) {
	if !models.ValidRole(role) {
		return false, fmt.Errorf("invalid role: %s", role)
	}

	for _, acct := range s.accounts {
		if acct.Email == email {
			return false, nil
		}
	}

	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return false, err
	}

	acct := models.Account{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
	}

	accounts := append(s.listAccounts(), acct)
	if err := s.store.Put(ctx, s.key(storage.KeyUsers), accounts); err != nil {
		return false, err
	}
	s.accounts = accounts

	user := acct.User()
	if err := s.persistSession(ctx, user); err != nil {
		return false, err
	}
	s.current = &user
	return true, nil
}

// Logout clears the active session and its persisted record. Logging out
// twice is harmless.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key(storage.KeySession)); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// CurrentUser returns the account of the active session, or nil when nobody
// is logged in. The returned copy never carries credential material.
func (s *AuthService) CurrentUser() *models.User {
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// AccountCount reports how many accounts are registered.
func (s *AuthService) AccountCount() int {
	return len(s.accounts)
}

func (s *AuthService) persistSession(ctx context.Context, user models.User) error {
	token, err := s.tokens.Encode(user)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, s.key(storage.KeySession), token)
}

// listAccounts returns a copy so a failed persist leaves s.accounts intact.
func (s *AuthService) listAccounts() []models.Account {
	accounts := make([]models.Account, len(s.accounts))
	copy(accounts, s.accounts)
	return accounts
}

func (s *AuthService) key(suffix string) string {
	return storage.Key(s.cfg.BlobKeyPrefix, suffix)
}
