package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"buildmart/internal/domain"
	tokenrepo "buildmart/internal/repository/token"
)

type tokenManager struct {
	repo tokenrepo.Repository
	ttl  time.Duration
}

func newTokenManager(repo tokenrepo.Repository, ttl time.Duration) *tokenManager {
	return &tokenManager{repo: repo, ttl: ttl}
}

func (m *tokenManager) Issue(ctx context.Context, userID string) (string, error) {
	// Logins are rare enough that this is where stale sessions get purged.
	_, _ = m.repo.DeleteExpired(ctx)

	expiresAt := time.Now().Add(m.ttl)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, tokenrepo.Session{
			Token:     token,
			UserID:    userID,
			ExpiresAt: expiresAt,
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

func (m *tokenManager) Validate(ctx context.Context, token string) (string, bool) {
	session, err := m.repo.Get(ctx, token)
	if err != nil {
		return "", false
	}
	if time.Now().After(session.ExpiresAt) {
		_ = m.repo.Delete(ctx, token)
		return "", false
	}
	return session.UserID, true
}

func (m *tokenManager) Revoke(ctx context.Context, token string) error {
	return m.repo.Delete(ctx, token)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
