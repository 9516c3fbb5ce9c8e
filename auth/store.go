package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/filmlist-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// UserStore is the persistence boundary for user accounts. The service layer
// depends on this interface so tests can substitute a mock store.
type UserStore interface {
	// CreateUser inserts a new user and fills in its ID and CreatedAt.
	CreateUser(ctx context.Context, user *User) error
	// UserExists reports whether any user already holds the given username
	// or email, checked in a single query.
	UserExists(ctx context.Context, username, email string) (bool, error)
	// GetUserByEmail returns the user with the given email, or a
	// NotFoundError.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// GetUserByID returns the user with the given id, or a NotFoundError.
	GetUserByID(ctx context.Context, id int) (*User, error)
	// TouchLastLogin records a successful authentication.
	TouchLastLogin(ctx context.Context, id int) error
}

type pgUserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore returns a UserStore backed by the given pgx pool.
func NewUserStore(pool *pgxpool.Pool) UserStore {
	return &pgUserStore{pool: pool}
}

func (s *pgUserStore) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (username, email, password_hash)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`
	err := s.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// A racing registration can slip past the existence pre-check; the
		// unique indexes are the authority.
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.NewConflictError("user already exists", nil)
		}
		return apperror.NewDatabaseError("failed to create user", err)
	}
	return nil
}

func (s *pgUserStore) UserExists(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, username, strings.ToLower(email)).Scan(&exists); err != nil {
		return false, apperror.NewDatabaseError("failed to check user existence", err)
	}
	return exists, nil
}

func (s *pgUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, username, email, password_hash, created_at, last_login
	          FROM users WHERE email = $1`
	return s.scanUser(s.pool.QueryRow(ctx, query, strings.ToLower(email)))
}

func (s *pgUserStore) GetUserByID(ctx context.Context, id int) (*User, error) {
	query := `SELECT id, username, email, password_hash, created_at, last_login
	          FROM users WHERE id = $1`
	return s.scanUser(s.pool.QueryRow(ctx, query, id))
}

func (s *pgUserStore) scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}

func (s *pgUserStore) TouchLastLogin(ctx context.Context, id int) error {
	query := `UPDATE users SET last_login = now() WHERE id = $1`
	if _, err := s.pool.Exec(ctx, query, id); err != nil {
		return apperror.NewDatabaseError("failed to update last login", err)
	}
	return nil
}
