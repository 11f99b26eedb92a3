package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"connemaraqueens/internal/models"
	"connemaraqueens/internal/storage"
	"connemaraqueens/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeNotifier struct {
	notifications []models.Notification
	err           error
}

func (f *fakeNotifier) Notify(ctx context.Context, n models.Notification) error {
	f.notifications = append(f.notifications, n)
	return f.err
}

func TestCreate_DepositComputation(t *testing.T) {
	tests := []struct {
		name        string
		nucsCount   int
		queensCount int
		expected    string
	}{
		{name: "nucs and queens", nucsCount: 2, queensCount: 1, expected: "120"},
		{name: "nucs only", nucsCount: 3, queensCount: 0, expected: "150"},
		{name: "queens only", nucsCount: 0, queensCount: 4, expected: "80"},
		{name: "zero of both", nucsCount: 0, queensCount: 0, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(discardLogger(), memory.New(), &fakeNotifier{})

			booking, err := svc.Create(context.Background(), models.InsertBooking{
				FullName:       "Aoife Kelly",
				Email:          "aoife@example.com",
				Phone:          "0871234567",
				NucsCount:      tt.nucsCount,
				QueensCount:    tt.queensCount,
				PreferredMonth: "June",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, booking.DepositAmount)
		})
	}
}

func TestCreate_ReferenceFormat(t *testing.T) {
	svc := New(discardLogger(), memory.New(), &fakeNotifier{})

	booking, err := svc.Create(context.Background(), models.InsertBooking{
		FullName:       "Aoife Kelly",
		Email:          "aoife@example.com",
		Phone:          "0871234567",
		NucsCount:      1,
		PreferredMonth: "May",
	})

	require.NoError(t, err)
	assert.Regexp(t, `^BEE-[A-Z0-9]{8}$`, booking.Reference)
}

func TestCreate_NotifierReceivesBooking(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := New(discardLogger(), memory.New(), notifier)

	booking, err := svc.Create(context.Background(), models.InsertBooking{
		FullName:       "Aoife Kelly",
		Email:          "aoife@example.com",
		Phone:          "0871234567",
		NucsCount:      2,
		QueensCount:    1,
		PreferredMonth: "June",
	})
	require.NoError(t, err)

	require.Len(t, notifier.notifications, 1)
	n := notifier.notifications[0]
	assert.Equal(t, models.NotificationBooking, n.Kind)
	assert.Equal(t, booking.Reference, n.Reference)
	assert.Equal(t, "120", n.DepositAmount)
}

func TestCreate_NotifierFailureDoesNotFailBooking(t *testing.T) {
	store := memory.New()
	svc := New(discardLogger(), store, &fakeNotifier{err: errors.New("broker down")})

	booking, err := svc.Create(context.Background(), models.InsertBooking{
		FullName:       "Aoife Kelly",
		Email:          "aoife@example.com",
		Phone:          "0871234567",
		NucsCount:      1,
		PreferredMonth: "July",
	})
	require.NoError(t, err)

	// the booking must be persisted despite the failed notification
	persisted, err := store.GetBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking, persisted)
}

// collidingStorage reports the first n generated references as taken.
type collidingStorage struct {
	Storage
	collisions int
	seen       int
	lastRef    string
}

func (c *collidingStorage) GetBookingByReference(ctx context.Context, ref string) (models.Booking, error) {
	c.seen++
	if c.seen <= c.collisions {
		return models.Booking{Reference: ref}, nil
	}
	return models.Booking{}, storage.ErrBookingNotFound
}

func (c *collidingStorage) CreateBooking(ctx context.Context, insert models.InsertBooking, ref string) (models.Booking, error) {
	c.lastRef = ref
	return c.Storage.CreateBooking(ctx, insert, ref)
}

func TestCreate_RetriesOnReferenceCollision(t *testing.T) {
	store := &collidingStorage{Storage: memory.New(), collisions: 2}
	svc := New(discardLogger(), store, &fakeNotifier{})

	booking, err := svc.Create(context.Background(), models.InsertBooking{
		FullName:       "Aoife Kelly",
		Email:          "aoife@example.com",
		Phone:          "0871234567",
		NucsCount:      1,
		PreferredMonth: "June",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, store.seen)
	assert.Equal(t, store.lastRef, booking.Reference)
}

func TestCreate_GivesUpAfterRepeatedCollisions(t *testing.T) {
	store := &collidingStorage{Storage: memory.New(), collisions: 100}
	svc := New(discardLogger(), store, &fakeNotifier{})

	_, err := svc.Create(context.Background(), models.InsertBooking{
		FullName:       "Aoife Kelly",
		Email:          "aoife@example.com",
		Phone:          "0871234567",
		NucsCount:      1,
		PreferredMonth: "June",
	})

	assert.ErrorIs(t, err, ErrReferenceExhausted)
}

func TestGetByReference(t *testing.T) {
	svc := New(discardLogger(), memory.New(), &fakeNotifier{})
	ctx := context.Background()

	created, err := svc.Create(ctx, models.InsertBooking{
		FullName:       "Aoife Kelly",
		Email:          "aoife@example.com",
		Phone:          "0871234567",
		NucsCount:      1,
		PreferredMonth: "June",
	})
	require.NoError(t, err)

	found, err := svc.GetByReference(ctx, created.Reference)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = svc.GetByReference(ctx, "BEE-MISSING1")
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}
