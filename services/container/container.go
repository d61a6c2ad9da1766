package container

import (
	"context"
	"fmt"
	"time"

	"maharaja-dine-service/config"
	"maharaja-dine-service/services"
	"maharaja-dine-service/storage"
)

// ServiceContainer wires the blob store and the three state stores together.
// Consumers construct one container at startup and reach every store through
// it; the stores themselves hold no package-level state.
type ServiceContainer struct {
	cfg   *config.Config
	store storage.BlobStore

	sessionTokens *services.SessionTokenService
	auth          *services.AuthService
	menu          *services.MenuService
	booking       *services.BookingService
}

// NewServiceContainer builds the container for the configured backend. A nil
// cfg uses the environment config.
func NewServiceContainer(ctx context.Context, cfg *config.Config) (*ServiceContainer, error) {
	if cfg == nil {
		cfg = config.GetConfig()
	}

	store, err := openBlobStore(cfg)
	if err != nil {
		return nil, err
	}

	return NewServiceContainerWithStore(ctx, cfg, store)
}

// NewServiceContainerWithStore wires the services over an existing blob
// store. Tests use it with a memory store.
func NewServiceContainerWithStore(ctx context.Context, cfg *config.Config, store storage.BlobStore) (*ServiceContainer, error) {
	c := &ServiceContainer{cfg: cfg, store: store}
	c.sessionTokens = services.NewSessionTokenService(cfg)

	var err error
	if c.auth, err = services.NewAuthService(ctx, store, c.sessionTokens, cfg, nil); err != nil {
		return nil, fmt.Errorf("init auth service: %w", err)
	}
	if c.menu, err = services.NewMenuService(ctx, store, cfg, nil); err != nil {
		return nil, fmt.Errorf("init menu service: %w", err)
	}
	if c.booking, err = services.NewBookingService(ctx, store, cfg, nil); err != nil {
		return nil, fmt.Errorf("init booking service: %w", err)
	}

	return c, nil
}

func openBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemoryBlobStore(), nil

	case config.BackendSQLite:
		return storage.NewGormBlobStore(cfg.SQLitePath)

	case config.BackendRedis:
		store := storage.NewRedisBlobStore(cfg)
		// Surface a dead Redis at startup instead of on the first operation.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis unavailable: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

// Auth returns the session/account store.
func (c *ServiceContainer) Auth() *services.AuthService {
	return c.auth
}

// Menu returns the catalog store.
func (c *ServiceContainer) Menu() *services.MenuService {
	return c.menu
}

// Bookings returns the reservation store.
func (c *ServiceContainer) Bookings() *services.BookingService {
	return c.booking
}

// Config returns the container's configuration.
func (c *ServiceContainer) Config() *config.Config {
	return c.cfg
}

// Store returns the underlying blob store.
func (c *ServiceContainer) Store() storage.BlobStore {
	return c.store
}
