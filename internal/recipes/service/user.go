package service

import (
	"context"
	"errors"
	"strings"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/nibbleworks/forkful/pkg/cryptox"
	"github.com/nibbleworks/forkful/pkg/idx"
	"github.com/nibbleworks/forkful/pkg/slogx"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 5

var (
	ErrEmailInvalid     = errors.New("invalid_email")
	ErrEmailTaken       = errors.New("email_taken")
	ErrPasswordTooShort = errors.New("password_too_short")
)

type UserService struct {
	Store store.Store
}

// Register creates a new account. The email is normalized before storage and
// must be unique across all users.
func (s *UserService) Register(ctx context.Context, email, name, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email, err := NormalizeEmail(email)
	if err != nil {
		return domain.User{}, err
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, ErrPasswordTooShort
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("registration rejected for taken email")
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// GetProfile fetches the caller's own account.
func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfileParams carries a partial profile update. Nil fields are left
// untouched.
type UpdateProfileParams struct {
	Email    *string
	Name     *string
	Password *string
}

// UpdateProfile applies a partial update to the caller's own account. A new
// password is re-hashed; a new email is normalized and must stay unique.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if p.Email != nil {
		email, err := NormalizeEmail(*p.Email)
		if err != nil {
			return domain.User{}, err
		}
		u.Email = email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Password != nil {
		if len(*p.Password) < MinPasswordLength {
			return domain.User{}, ErrPasswordTooShort
		}
		hash, err := cryptox.HashPassword(*p.Password)
		if err != nil {
			return domain.User{}, err
		}
		u.PasswordHash = hash
	}

	if err := s.Store.Users().UpdateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, userID)
}

// NormalizeEmail lower-cases the domain part of an address and leaves the
// local part as given. The address must have non-empty local and domain
// parts.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	local, dom, ok := strings.Cut(email, "@")
	if !ok || local == "" || dom == "" {
		return "", ErrEmailInvalid
	}
	return local + "@" + strings.ToLower(dom), nil
}
