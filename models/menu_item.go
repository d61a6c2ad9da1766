package models

import "fmt"

// Menu categories.
const (
	CategoryStarter = "starter"
	CategoryMain    = "main"
	CategoryDessert = "dessert"
)

// Spice levels. The empty string means unspecified.
const (
	SpiceMild   = "mild"
	SpiceMedium = "medium"
	SpiceHot    = "hot"
)

// MenuItem represents one dish on the menu. JSON field names match the
// persisted catalog blob.
type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Available    bool    `json:"available"`
	SpiceLevel   string  `json:"spiceLevel,omitempty"`
	IsVegetarian bool    `json:"isVegetarian,omitempty"`
}

// Validate checks the fields admin input can get wrong.
func (m MenuItem) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Price < 0 {
		return fmt.Errorf("price must be >= 0")
	}
	if !ValidCategory(m.Category) {
		return fmt.Errorf("invalid category: %s", m.Category)
	}
	if !ValidSpiceLevel(m.SpiceLevel) {
		return fmt.Errorf("invalid spice level: %s", m.SpiceLevel)
	}
	return nil
}

// MenuItemUpdate carries a partial update of a menu item; nil fields keep
// their current value.
type MenuItemUpdate struct {
	Name         *string
	Description  *string
	Price        *float64
	Category     *string
	Image        *string
	Available    *bool
	SpiceLevel   *string
	IsVegetarian *bool
}

// Apply merges the update into item.
func (u MenuItemUpdate) Apply(item *MenuItem) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.Price != nil {
		item.Price = *u.Price
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Image != nil {
		item.Image = *u.Image
	}
	if u.Available != nil {
		item.Available = *u.Available
	}
	if u.SpiceLevel != nil {
		item.SpiceLevel = *u.SpiceLevel
	}
	if u.IsVegetarian != nil {
		item.IsVegetarian = *u.IsVegetarian
	}
}

// ValidCategory reports whether category is one of the menu categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryStarter, CategoryMain, CategoryDessert:
		return true
	}
	return false
}

// ValidSpiceLevel reports whether level is empty or a known spice level.
func ValidSpiceLevel(level string) bool {
	switch level {
	case "", SpiceMild, SpiceMedium, SpiceHot:
		return true
	}
	return false
}
