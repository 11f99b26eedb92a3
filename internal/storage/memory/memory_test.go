package memory

import (
	"context"
	"testing"
	"time"

	"connemaraqueens/internal/models"
	"connemaraqueens/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking(n int) models.InsertBooking {
	return models.InsertBooking{
		FullName:       "Aoife Kelly",
		Email:          "aoife@example.com",
		Phone:          "0871234567",
		NucsCount:      n,
		QueensCount:    1,
		PreferredMonth: "June",
		DepositAmount:  "120",
	}
}

func TestCreateBooking_AllocatesIncreasingIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	prev := 0
	for i := 0; i < 5; i++ {
		booking, err := s.CreateBooking(ctx, testBooking(i), "BEE-AAAAAAA"+string(rune('A'+i)))
		require.NoError(t, err)
		assert.Greater(t, booking.ID, prev)
		prev = booking.ID
	}
}

func TestCreateBooking_SetsCreatedAt(t *testing.T) {
	s := New()

	before := time.Now()
	booking, err := s.CreateBooking(context.Background(), testBooking(2), "BEE-AAAAAAAA")
	after := time.Now()

	require.NoError(t, err)
	assert.False(t, booking.CreatedAt.Before(before))
	assert.False(t, booking.CreatedAt.After(after))
}

func TestGetBookingByReference(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateBooking(ctx, testBooking(2), "BEE-12345678")
	require.NoError(t, err)

	found, err := s.GetBookingByReference(ctx, "BEE-12345678")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = s.GetBookingByReference(ctx, "BEE-NOPENOPE")
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestUpdateBookingPayment_UnknownID(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateBooking(ctx, testBooking(2), "BEE-AAAAAAAA")
	require.NoError(t, err)

	_, err = s.UpdateBookingPayment(ctx, created.ID+100, "pi_123")
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)

	// the miss must not have touched the stored record
	unchanged, err := s.GetBooking(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, unchanged)
}

func TestUpdateBookingPayment_LastWriteWins(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateBooking(ctx, testBooking(2), "BEE-AAAAAAAA")
	require.NoError(t, err)

	_, err = s.UpdateBookingPayment(ctx, created.ID, "pi_first")
	require.NoError(t, err)

	updated, err := s.UpdateBookingPayment(ctx, created.ID, "pi_second")
	require.NoError(t, err)
	assert.Equal(t, "pi_second", updated.StripePaymentID)

	// every other field survives the update
	updated.StripePaymentID = ""
	assert.Equal(t, created, updated)
}

func TestListBookings_CreationOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	refs := []string{"BEE-AAAAAAAA", "BEE-BBBBBBBB", "BEE-CCCCCCCC"}
	for _, ref := range refs {
		_, err := s.CreateBooking(ctx, testBooking(1), ref)
		require.NoError(t, err)
	}

	bookings, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	for i, booking := range bookings {
		assert.Equal(t, refs[i], booking.Reference)
		assert.Equal(t, i+1, booking.ID)
	}
}

func TestCreateContactMessage(t *testing.T) {
	s := New()
	ctx := context.Background()

	before := time.Now()
	message, err := s.CreateContactMessage(ctx, models.InsertContactMessage{
		Name:    "Brendan",
		Email:   "b@x.com",
		Subject: "Hi",
		Message: "0123456789",
	})
	after := time.Now()

	require.NoError(t, err)
	assert.Equal(t, 1, message.ID)
	assert.Equal(t, "0123456789", message.Message)
	assert.False(t, message.CreatedAt.Before(before))
	assert.False(t, message.CreatedAt.After(after))

	second, err := s.CreateContactMessage(ctx, models.InsertContactMessage{
		Name:    "Brendan",
		Email:   "b@x.com",
		Subject: "Hi again",
		Message: "more",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestUserOperations(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.InsertUser{Username: "admin", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	byID, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	_, err = s.GetUser(ctx, 99)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
