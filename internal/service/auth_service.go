package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resume-builder/internal/domain"
	"resume-builder/internal/middleware"
	"resume-builder/internal/port"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthService handles signup, login, and current-user lookups.
type AuthService struct {
	store      UserStore
	bcryptCost int
	jwtCfg     middleware.JWTConfig
}

// NewAuthService creates a new authentication service.
func NewAuthService(store UserStore, bcryptCost int, jwtCfg middleware.JWTConfig) *AuthService {
	return &AuthService{store: store, bcryptCost: bcryptCost, jwtCfg: jwtCfg}
}

// Signup registers a new user and returns a signed token for them.
func (s *AuthService) Signup(ctx context.Context, req domain.SignupRequest) (string, *domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return "", nil, fmt.Errorf("%w: name and email are required", port.ErrInvalidInput)
	}
	if len(req.Password) < 6 {
		return "", nil, fmt.Errorf("%w: password must be at least 6 characters", port.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             "user-" + uuid.NewString(),
		Name:           name,
		Email:          email,
		HashedPassword: string(hash),
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := middleware.GenerateToken(user, s.jwtCfg)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID)
	return token, user, nil
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (string, *domain.User, error) {
	user, err := s.store.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, port.ErrUserNotFound) {
			return "", nil, port.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		return "", nil, port.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, port.ErrUserInactive
	}

	token, err := middleware.GenerateToken(user, s.jwtCfg)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	slog.Info("user authenticated", "user_id", user.ID)
	return token, user, nil
}

// CurrentUser returns the stored record for an authenticated user.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.store.GetUserByID(ctx, userID)
}
