package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/marketpulse/stock-insights/internal/core/domain"
	"github.com/marketpulse/stock-insights/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenIssuer
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register validates the input, checks username availability, hashes the
// password, and persists the user. The existence pre-check is only a fast
// path; a concurrent insert still surfaces as domain.ErrUserExists because
// the repository maps the store's uniqueness violation to it.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" || role == "" {
		return nil, domain.ErrMissingFields
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         parsed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

// Login verifies the credentials and issues an access token. An unknown
// username and a wrong password fail identically so the endpoint cannot be
// used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.Role, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", "", domain.ErrInvalidCredentials
		}
		// Anything else means the stored digest itself is unusable.
		return "", "", fmt.Errorf("verify password digest: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("issue token: %w", err)
	}

	return token, user.Role, nil
}

var _ ports.AuthService = (*AuthService)(nil)
