package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connemaraqueens/internal/config"
	"connemaraqueens/internal/models"
	"connemaraqueens/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	pool *pgxpool.Pool
}

// Connect creates the connection pool and returns the repository.
func Connect(ctx context.Context, cfg *config.Config) (*PostgresRepo, error) {
	const op = "storage.postgres.Connect"

	poolConfig, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse config: %w", op, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create pool: %w", op, err)
	}

	return &PostgresRepo{pool: pool}, nil
}

// Migrate creates the schema when it does not exist yet.
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	const op = "storage.postgres.Migrate"

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			nucs_count INTEGER DEFAULT 0,
			queens_count INTEGER DEFAULT 0,
			preferred_month TEXT NOT NULL,
			notes TEXT,
			deposit_amount NUMERIC NOT NULL,
			reference TEXT NOT NULL,
			stripe_payment_id TEXT,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (r *PostgresRepo) CreateUser(ctx context.Context, insert models.InsertUser) (models.User, error) {
	const op = "storage.postgres.CreateUser"

	user := models.User{
		Username: insert.Username,
		Password: insert.Password,
	}

	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id;`,
		insert.Username,
		insert.Password,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (r *PostgresRepo) GetUser(ctx context.Context, id int) (models.User, error) {
	const op = "storage.postgres.GetUser"

	var user models.User
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, username, password FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (r *PostgresRepo) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "storage.postgres.GetUserByUsername"

	var user models.User
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, username, password FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (r *PostgresRepo) CreateBooking(ctx context.Context, insert models.InsertBooking, reference string) (models.Booking, error) {
	const op = "storage.postgres.CreateBooking"

	booking := models.Booking{
		FullName:       insert.FullName,
		Email:          insert.Email,
		Phone:          insert.Phone,
		NucsCount:      insert.NucsCount,
		QueensCount:    insert.QueensCount,
		PreferredMonth: insert.PreferredMonth,
		Notes:          insert.Notes,
		DepositAmount:  insert.DepositAmount,
		Reference:      reference,
	}

	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO bookings (full_name, email, phone, nucs_count, queens_count, preferred_month, notes, deposit_amount, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at;`,
		insert.FullName,
		insert.Email,
		insert.Phone,
		insert.NucsCount,
		insert.QueensCount,
		insert.PreferredMonth,
		insert.Notes,
		insert.DepositAmount,
		reference,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

func (r *PostgresRepo) GetBooking(ctx context.Context, id int) (models.Booking, error) {
	const op = "storage.postgres.GetBooking"

	booking, err := r.scanBooking(r.pool.QueryRow(
		ctx,
		selectBooking+` WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}

		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

func (r *PostgresRepo) GetBookingByReference(ctx context.Context, reference string) (models.Booking, error) {
	const op = "storage.postgres.GetBookingByReference"

	booking, err := r.scanBooking(r.pool.QueryRow(
		ctx,
		selectBooking+` WHERE reference = $1`,
		reference,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}

		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

func (r *PostgresRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	const op = "storage.postgres.ListBookings"

	rows, err := r.pool.Query(ctx, selectBooking+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *PostgresRepo) UpdateBookingPayment(ctx context.Context, id int, stripePaymentID string) (models.Booking, error) {
	const op = "storage.postgres.UpdateBookingPayment"

	cmdTag, err := r.pool.Exec(
		ctx,
		`UPDATE bookings SET stripe_payment_id = $1 WHERE id = $2`,
		stripePaymentID,
		id,
	)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	return r.GetBooking(ctx, id)
}

func (r *PostgresRepo) CreateContactMessage(ctx context.Context, insert models.InsertContactMessage) (models.ContactMessage, error) {
	const op = "storage.postgres.CreateContactMessage"

	message := models.ContactMessage{
		Name:    insert.Name,
		Email:   insert.Email,
		Subject: insert.Subject,
		Message: insert.Message,
	}

	err := r.pool.QueryRow(
		ctx,
		`INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;`,
		insert.Name,
		insert.Email,
		insert.Subject,
		insert.Message,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return message, nil
}

// Close closes the connection pool.
func (r *PostgresRepo) Close() {
	r.pool.Close()
}

const selectBooking = `SELECT id, full_name, email, phone, nucs_count, queens_count,
	preferred_month, COALESCE(notes, ''), deposit_amount::text, reference,
	COALESCE(stripe_payment_id, ''), created_at
	FROM bookings`

func (r *PostgresRepo) scanBooking(row pgx.Row) (models.Booking, error) {
	var booking models.Booking
	err := row.Scan(
		&booking.ID,
		&booking.FullName,
		&booking.Email,
		&booking.Phone,
		&booking.NucsCount,
		&booking.QueensCount,
		&booking.PreferredMonth,
		&booking.Notes,
		&booking.DepositAmount,
		&booking.Reference,
		&booking.StripePaymentID,
		&booking.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}

// dsn builds the database connection string.
func dsn(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s database=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)
}
