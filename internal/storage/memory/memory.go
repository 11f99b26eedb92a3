package memory

import (
	"context"
	"sync"
	"time"

	"connemaraqueens/internal/models"
	"connemaraqueens/internal/storage"
)

// MemStorage keeps every entity in process-local maps. A single mutex guards
// the maps together with the id counters so "read counter, write entry,
// advance counter" stays atomic under concurrent handlers.
type MemStorage struct {
	mu sync.Mutex

	users    map[int]models.User
	bookings map[int]models.Booking
	messages map[int]models.ContactMessage

	currentUserID    int
	currentBookingID int
	currentMessageID int
}

func New() *MemStorage {
	return &MemStorage{
		users:            make(map[int]models.User),
		bookings:         make(map[int]models.Booking),
		messages:         make(map[int]models.ContactMessage),
		currentUserID:    1,
		currentBookingID: 1,
		currentMessageID: 1,
	}
}

func (s *MemStorage) CreateUser(ctx context.Context, insert models.InsertUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// username uniqueness is the caller's job here; the postgres backend
	// enforces it with a constraint
	user := models.User{
		ID:       s.currentUserID,
		Username: insert.Username,
		Password: insert.Password,
	}
	s.users[user.ID] = user
	s.currentUserID++

	return user, nil
}

func (s *MemStorage) GetUser(ctx context.Context, id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrUserNotFound
	}

	return user, nil
}

func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}

	return models.User{}, storage.ErrUserNotFound
}

func (s *MemStorage) CreateBooking(ctx context.Context, insert models.InsertBooking, reference string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := models.Booking{
		ID:             s.currentBookingID,
		FullName:       insert.FullName,
		Email:          insert.Email,
		Phone:          insert.Phone,
		NucsCount:      insert.NucsCount,
		QueensCount:    insert.QueensCount,
		PreferredMonth: insert.PreferredMonth,
		Notes:          insert.Notes,
		DepositAmount:  insert.DepositAmount,
		Reference:      reference,
		CreatedAt:      time.Now(),
	}
	s.bookings[booking.ID] = booking
	s.currentBookingID++

	return booking, nil
}

func (s *MemStorage) GetBooking(ctx context.Context, id int) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, storage.ErrBookingNotFound
	}

	return booking, nil
}

func (s *MemStorage) GetBookingByReference(ctx context.Context, reference string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, booking := range s.bookings {
		if booking.Reference == reference {
			return booking, nil
		}
	}

	return models.Booking{}, storage.ErrBookingNotFound
}

func (s *MemStorage) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]models.Booking, 0, len(s.bookings))
	// ids are dense from 1, so an index walk keeps creation order
	for id := 1; id < s.currentBookingID; id++ {
		if booking, ok := s.bookings[id]; ok {
			bookings = append(bookings, booking)
		}
	}

	return bookings, nil
}

// UpdateBookingPayment replaces the stored record with a copy carrying the
// payment id. Last write wins; no other field is touched.
func (s *MemStorage) UpdateBookingPayment(ctx context.Context, id int, stripePaymentID string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, storage.ErrBookingNotFound
	}

	booking.StripePaymentID = stripePaymentID
	s.bookings[id] = booking

	return booking, nil
}

func (s *MemStorage) CreateContactMessage(ctx context.Context, insert models.InsertContactMessage) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := models.ContactMessage{
		ID:        s.currentMessageID,
		Name:      insert.Name,
		Email:     insert.Email,
		Subject:   insert.Subject,
		Message:   insert.Message,
		CreatedAt: time.Now(),
	}
	s.messages[message.ID] = message
	s.currentMessageID++

	return message, nil
}
