package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connemaraqueens/internal/lib/jwt"
	"connemaraqueens/internal/lib/logger/sl"
	"connemaraqueens/internal/models"
	"connemaraqueens/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

type Storage interface {
	CreateUser(ctx context.Context, user models.InsertUser) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

type Auth struct {
	log      *slog.Logger
	storage  Storage
	secret   string
	tokenTTL time.Duration
}

func New(log *slog.Logger, storage Storage, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		log:      log,
		storage:  storage,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates an administrator account with a bcrypt password hash.
// Storage leaves username uniqueness to the caller, so the check lives here.
func (a *Auth) Register(ctx context.Context, username string, password string) (models.User, error) {
	const op = "services.auth.Register"

	log := a.log.With(slog.String("op", op))

	_, err := a.storage.GetUserByUsername(ctx, username)
	if err == nil {
		log.Warn("user already exists", slog.String("username", username))

		return models.User{}, fmt.Errorf("%s: %w", op, ErrUserExists)
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := a.storage.CreateUser(ctx, models.InsertUser{
		Username: username,
		Password: string(passHash),
	})
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserExists)
		}

		log.Error("failed to save user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.Int("id", user.ID))

	return user, nil
}

// Login checks the credentials and returns a signed token.
func (a *Auth) Login(ctx context.Context, username string, password string) (string, error) {
	const op = "services.auth.Login"

	log := a.log.With(slog.String("op", op))

	user, err := a.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found")

			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		log.Error("failed to get user", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(user, a.secret, a.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", slog.Int("id", user.ID))

	return token, nil
}
