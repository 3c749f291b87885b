package service

import (
	"context"
	"errors"
	"time"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/nibbleworks/forkful/pkg/cryptox"
	"github.com/nibbleworks/forkful/pkg/idx"
	"github.com/nibbleworks/forkful/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
)

// TokenService issues and verifies opaque bearer tokens. Only the SHA-256
// fingerprint of a token is persisted; the opaque value crosses the wire
// exactly once, at issuance.
type TokenService struct {
	Store    store.Store
	TokenTTL time.Duration
}

// IssueToken verifies the credentials and mints a new API token for the
// user. All credential failures collapse into ErrInvalidCredentials so the
// response never reveals whether the email exists.
func (s *TokenService) IssueToken(ctx context.Context, email, password string) (string, time.Duration, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	email, err := NormalizeEmail(email)
	if err != nil {
		return "", 0, ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("token issuance rejected, password mismatch")
		return "", 0, ErrInvalidCredentials
	}
	if !u.IsActive {
		l.Info("token issuance rejected, inactive user")
		return "", 0, ErrInvalidCredentials
	}

	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", 0, err
	}

	t := domain.APIToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(opaque),
		ExpiresAt: now.Add(s.TokenTTL),
	}
	if err := s.Store.Tokens().CreateToken(ctx, t); err != nil {
		return "", 0, err
	}

	return opaque, s.TokenTTL, nil
}

// VerifyToken resolves an opaque bearer token to its user ID. It satisfies
// the authentication middleware's verifier contract.
func (s *TokenService) VerifyToken(ctx context.Context, token string) (string, error) {
	fp := cryptox.FingerprintToken(token)

	t, err := s.Store.Tokens().GetTokenByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if t.Revoked || time.Now().After(t.ExpiresAt) {
		return "", ErrInvalidToken
	}

	u, err := s.Store.Users().GetUserByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if !u.IsActive {
		return "", ErrInvalidToken
	}

	return u.ID, nil
}

// RevokeToken invalidates a token by its opaque value. Revoking an unknown
// token is not an error.
func (s *TokenService) RevokeToken(ctx context.Context, token string) error {
	err := s.Store.Tokens().RevokeToken(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
