package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maharaja-dine-service/config"
	"maharaja-dine-service/models"
	"maharaja-dine-service/storage"
	"maharaja-dine-service/utils"
)

// BookingRequest carries the customer-supplied fields of a new booking. The
// id, status and creation time are assigned by the store. The account name
// and email are snapshotted as given; the account store is deliberately not
// consulted.
type BookingRequest struct {
	UserID          string
	UserName        string
	UserEmail       string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

// BookingService owns the booking ledger. Bookings are never edited or
// deleted; the only mutation after creation is the status moving out of
// pending.
type BookingService struct {
	store storage.BlobStore
	cfg   *config.Config
	diag  Diagnostic

	bookings []models.Booking
}

// NewBookingService creates the booking store. An unreadable persisted
// ledger falls back to empty through the diagnostic hook.
func NewBookingService(ctx context.Context, store storage.BlobStore, cfg *config.Config, diag Diagnostic) (*BookingService, error) {
	if diag == nil {
		diag = defaultDiagnostic
	}
	s := &BookingService{store: store, cfg: cfg, diag: diag}

	key := s.key()
	var bookings []models.Booking
	if _, err := store.Get(ctx, key, &bookings); err != nil {
		if !errors.Is(err, storage.ErrCorruptBlob) {
			return nil, err
		}
		diag(key, err)
		bookings = nil
	}
	s.bookings = bookings

	return s, nil
}

// Bookings returns a copy of the booking ledger in creation order. Consumers
// filter by status or account themselves.
func (s *BookingService) Bookings() []models.Booking {
	bookings := make([]models.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return bookings
}

// AddBooking appends a new booking. The booking always starts as pending; a
// caller cannot create one in any other status.
func (s *BookingService) AddBooking(ctx context.Context, req BookingRequest) error {
	if req.Guests <= 0 {
		return fmt.Errorf("guests must be > 0")
	}
	if req.Date == "" || req.Time == "" {
		return fmt.Errorf("date and time are required")
	}

	booking := models.Booking{
		ID:              utils.NewID(),
		UserID:          req.UserID,
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          models.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	bookings := append(s.Bookings(), booking)
	if err := s.persist(ctx, bookings); err != nil {
		return err
	}
	s.bookings = bookings
	return nil
}

// UpdateStatus moves the booking with the given id out of pending. Confirmed
// and cancelled are terminal: a booking that already left pending is logged
// and left untouched, as is an unknown id.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	if status == models.StatusPending {
		return nil
	}
	if s.bookings[i].Status != models.StatusPending {
		config.Warning("booking %s: ignoring %s -> %s transition", id, s.bookings[i].Status, status)
		return nil
	}

	bookings := s.Bookings()
	bookings[i].Status = status
	if err := s.persist(ctx, bookings); err != nil {
		return err
	}
	s.bookings = bookings
	return nil
}

func (s *BookingService) indexOf(id string) int {
	for i, booking := range s.bookings {
		if booking.ID == id {
			return i
		}
	}
	return -1
}

func (s *BookingService) persist(ctx context.Context, bookings []models.Booking) error {
	return s.store.Put(ctx, s.key(), bookings)
}

func (s *BookingService) key() string {
	return storage.Key(s.cfg.BlobKeyPrefix, storage.KeyBookings)
}
