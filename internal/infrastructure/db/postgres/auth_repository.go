package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marketpulse/stock-insights/internal/core/domain"
	"github.com/marketpulse/stock-insights/internal/core/ports"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

type AuthRepository struct {
	pool *pgxpool.Pool
}

func NewAuthRepository(pool *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{pool: pool}
}

// Create inserts the user and returns it with its store-assigned id. A
// unique-violation on the username index maps to domain.ErrUserExists, so a
// registration racing past the service's pre-check still surfaces as a
// duplicate rather than an internal failure.
func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const q = `INSERT INTO users (username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	now := time.Now().UTC()

	var id int64
	err := r.pool.QueryRow(ctx, q, user.Username, user.PasswordHash, string(user.Role), now).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = strconv.FormatInt(id, 10)
	created.CreatedAt = now
	return &created, nil
}

func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE username = $1`

	var (
		id        int64
		name      string
		hash      string
		role      string
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, q, username).Scan(&id, &name, &hash, &role, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("user %q: stored role: %w", name, err)
	}

	return &domain.User{
		ID:           strconv.FormatInt(id, 10),
		Username:     name,
		PasswordHash: hash,
		Role:         parsed,
		CreatedAt:    createdAt,
	}, nil
}

var _ ports.AuthRepository = (*AuthRepository)(nil)
