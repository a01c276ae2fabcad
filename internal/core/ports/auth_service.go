package ports

import (
	"context"

	"github.com/marketpulse/stock-insights/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, domain.Role, error)
}
