// Package auth handles operator login and bearer-token sessions.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"buildmart/internal/domain"
	tokenrepo "buildmart/internal/repository/token"

	"golang.org/x/crypto/bcrypt"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	users  userRepo
	tokens *tokenManager
}

func New(users userRepo, tokens tokenrepo.Repository, sessionTTL time.Duration) *Service {
	return &Service{
		users:  users,
		tokens: newTokenManager(tokens, sessionTTL),
	}
}

// Login checks credentials and issues a session token. Unknown emails and
// wrong passwords both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Validate resolves a bearer token to its operator, rejecting expired or
// unknown sessions.
func (s *Service) Validate(ctx context.Context, token string) (*domain.User, bool) {
	if token == "" {
		return nil, false
	}
	userID, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, false
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, false
	}
	return user, true
}

// Logout revokes the session. Revoking an unknown token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, token)
}

// HashPassword wraps bcrypt for account provisioning (seed, future signup).
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
