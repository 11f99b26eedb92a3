package storage

import (
	"context"
	"errors"

	"connemaraqueens/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user is not found")
	ErrUserExists      = errors.New("user already exists")
	ErrBookingNotFound = errors.New("booking is not found")
)

// Storage is the persistence contract shared by all backends. Backends own
// the entity maps/tables and id allocation; services never mutate entities
// except through these operations.
type Storage interface {
	CreateUser(ctx context.Context, user models.InsertUser) (models.User, error)
	GetUser(ctx context.Context, id int) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	CreateBooking(ctx context.Context, booking models.InsertBooking, reference string) (models.Booking, error)
	GetBooking(ctx context.Context, id int) (models.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBookingPayment(ctx context.Context, id int, stripePaymentID string) (models.Booking, error)

	CreateContactMessage(ctx context.Context, message models.InsertContactMessage) (models.ContactMessage, error)
}
