package services

import (
	"context"
	"errors"

	"maharaja-dine-service/config"
	"maharaja-dine-service/models"
	"maharaja-dine-service/storage"
	"maharaja-dine-service/utils"
)

// MenuService owns the menu catalog. The catalog is never empty after
// construction: an absent, empty or unreadable persisted catalog is replaced
// by the built-in seed and written back immediately.
type MenuService struct {
	store storage.BlobStore
	cfg   *config.Config
	diag  Diagnostic

	items []models.MenuItem
}

// NewMenuService creates the catalog store, seeding it on first run.
func NewMenuService(ctx context.Context, store storage.BlobStore, cfg *config.Config, diag Diagnostic) (*MenuService, error) {
	if diag == nil {
		diag = defaultDiagnostic
	}
	s := &MenuService{store: store, cfg: cfg, diag: diag}

	key := s.key()
	var items []models.MenuItem
	found, err := store.Get(ctx, key, &items)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptBlob) {
			return nil, err
		}
		diag(key, err)
		found = false
		items = nil
	}

	if !found || len(items) == 0 {
		items = defaultMenu()
		if err := store.Put(ctx, key, items); err != nil {
			return nil, err
		}
	}
	s.items = items

	return s, nil
}

// MenuItems returns a copy of the catalog in stored order. Consumers filter
// by category or availability themselves.
func (s *MenuService) MenuItems() []models.MenuItem {
	items := make([]models.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

// AddItem appends a new item under a fresh id. Any id on the argument is
// ignored.
func (s *MenuService) AddItem(ctx context.Context, item models.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	item.ID = utils.NewID()
	items := append(s.MenuItems(), item)
	if err := s.persist(ctx, items); err != nil {
		return err
	}
	s.items = items
	return nil
}

// UpdateItem merges updates into the item with the given id, leaving every
// other field untouched. Unknown ids are ignored.
func (s *MenuService) UpdateItem(ctx context.Context, id string, updates models.MenuItemUpdate) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	item := s.items[i]
	updates.Apply(&item)
	if err := item.Validate(); err != nil {
		return err
	}

	items := s.MenuItems()
	items[i] = item
	if err := s.persist(ctx, items); err != nil {
		return err
	}
	s.items = items
	return nil
}

// DeleteItem removes the item with the given id. Unknown ids are ignored.
func (s *MenuService) DeleteItem(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	items := s.MenuItems()
	items = append(items[:i], items[i+1:]...)
	if err := s.persist(ctx, items); err != nil {
		return err
	}
	s.items = items
	return nil
}

// ToggleAvailability flips the availability flag of the item with the given
// id. Unknown ids are ignored.
func (s *MenuService) ToggleAvailability(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	items := s.MenuItems()
	items[i].Available = !items[i].Available
	if err := s.persist(ctx, items); err != nil {
		return err
	}
	s.items = items
	return nil
}

func (s *MenuService) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *MenuService) persist(ctx context.Context, items []models.MenuItem) error {
	return s.store.Put(ctx, s.key(), items)
}

func (s *MenuService) key() string {
	return storage.Key(s.cfg.BlobKeyPrefix, storage.KeyMenu)
}
