package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"resume-builder/internal/domain"
	"resume-builder/internal/port"
)

// PostgresStore handles all relational database operations.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection and returns a store instance.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// --- Users ---

// CreateUser inserts a new user record.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, email, hashed_password, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.HashedPassword, u.IsActive, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return port.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email address.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, hashed_password, is_active, created_at
	          FROM users WHERE email = $1`

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// GetUserByID retrieves a user by ID.
func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, hashed_password, is_active, created_at
	          FROM users WHERE id = $1`

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// --- Audit Logs ---

// WriteAudit implements middleware.AuditWriter.
func (s *PostgresStore) WriteAudit(userID, method, path, ip, userAgent string, status int) error {
	query := `INSERT INTO audit_logs (user_id, method, path, status, ip, user_agent)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.db.ExecContext(context.Background(), query,
		userID, method, path, status, ip, userAgent,
	)
	return err
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
