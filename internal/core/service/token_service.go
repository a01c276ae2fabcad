package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marketpulse/stock-insights/internal/core/domain"
	"github.com/marketpulse/stock-insights/internal/core/ports"
)

// TokenService issues and verifies HS256 JWTs. The signing secret is set at
// construction and never changes for the process lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a self-contained token carrying the user id and role,
// expiring after the configured TTL.
func (s *TokenService) Issue(userID string, role domain.Role) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry of a raw token and decodes its
// claims. The signing method is pinned to HS256 so a token cannot downgrade
// itself to "none" or smuggle in another algorithm.
func (s *TokenService) Verify(raw string) (*ports.TokenClaims, error) {
	var claims tokenClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrBadSignature
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenMalformed
	}

	role, roleErr := domain.ParseRole(claims.Role)
	if roleErr != nil || claims.Subject == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &ports.TokenClaims{UserID: claims.Subject, Role: role}, nil
}

var _ ports.TokenIssuer = (*TokenService)(nil)
var _ ports.TokenVerifier = (*TokenService)(nil)
