package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"connemaraqueens/internal/models"
	"connemaraqueens/internal/storage"

	"github.com/redis/go-redis/v9"
)

const bookingTTL = 5 * time.Minute

// CachedStorage wraps another Storage with cache-aside reads for bookings.
// Writes go straight through; payment linkage invalidates the cached entry.
type CachedStorage struct {
	storage.Storage

	client *redis.Client
}

func New(ctx context.Context, inner storage.Storage, address string, password string, db int) (*CachedStorage, error) {
	const op = "storage.rediscache.New"

	rdb := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &CachedStorage{Storage: inner, client: rdb}, nil
}

func bookingKey(id int) string {
	return fmt.Sprintf("booking:id:%d", id)
}

func referenceKey(reference string) string {
	return fmt.Sprintf("booking:ref:%s", reference)
}

func (c *CachedStorage) GetBooking(ctx context.Context, id int) (models.Booking, error) {
	if booking, ok := c.cached(ctx, bookingKey(id)); ok {
		return booking, nil
	}

	booking, err := c.Storage.GetBooking(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}

	c.store(ctx, booking)

	return booking, nil
}

func (c *CachedStorage) GetBookingByReference(ctx context.Context, reference string) (models.Booking, error) {
	if booking, ok := c.cached(ctx, referenceKey(reference)); ok {
		return booking, nil
	}

	booking, err := c.Storage.GetBookingByReference(ctx, reference)
	if err != nil {
		return models.Booking{}, err
	}

	c.store(ctx, booking)

	return booking, nil
}

func (c *CachedStorage) UpdateBookingPayment(ctx context.Context, id int, stripePaymentID string) (models.Booking, error) {
	booking, err := c.Storage.UpdateBookingPayment(ctx, id, stripePaymentID)
	if err != nil {
		return models.Booking{}, err
	}

	c.client.Del(ctx, bookingKey(id), referenceKey(booking.Reference))

	return booking, nil
}

func (c *CachedStorage) cached(ctx context.Context, key string) (models.Booking, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		// redis.Nil is a plain miss; anything else falls back to the
		// inner storage as well
		return models.Booking{}, false
	}

	var booking models.Booking
	if err := json.Unmarshal([]byte(val), &booking); err != nil {
		return models.Booking{}, false
	}

	return booking, true
}

func (c *CachedStorage) store(ctx context.Context, booking models.Booking) {
	data, err := json.Marshal(booking)
	if err != nil {
		return
	}

	c.client.Set(ctx, bookingKey(booking.ID), data, bookingTTL)
	c.client.Set(ctx, referenceKey(booking.Reference), data, bookingTTL)
}

// Close closes the redis connection.
func (c *CachedStorage) Close() {
	c.client.Close()
}
