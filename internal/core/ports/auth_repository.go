package ports

import (
	"context"

	"github.com/marketpulse/stock-insights/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Create must
// surface the store's uniqueness violation as domain.ErrUserExists; the
// constraint, not the caller's pre-check, is authoritative.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
