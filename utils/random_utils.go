package utils

import (
	"github.com/google/uuid"
)

// NewID returns a fresh unique identifier for a stored entity. The original
// client derived ids from the wall clock, which collides within a
// millisecond; UUIDs do not.
func NewID() string {
	return uuid.NewString()
}
