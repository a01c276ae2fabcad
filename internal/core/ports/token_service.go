package ports

import "github.com/marketpulse/stock-insights/internal/core/domain"

// TokenClaims is the decoded identity carried by a verified token.
type TokenClaims struct {
	UserID string
	Role   domain.Role
}

// TokenIssuer signs a time-bounded claim set for an authenticated user.
type TokenIssuer interface {
	Issue(userID string, role domain.Role) (string, error)
}

// TokenVerifier checks a raw token's signature and expiry. Failures are one
// of domain.ErrTokenExpired, domain.ErrBadSignature, domain.ErrTokenMalformed.
type TokenVerifier interface {
	Verify(raw string) (*TokenClaims, error)
}
