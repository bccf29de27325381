// Package authpw is the credential gate: it turns an email/password pair
// into an authenticated actor.
package authpw

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"framelight/api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for every failure mode (unknown
// email, wrong password, disabled seed login) so the response never
// reveals which part was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Directory is the actor lookup the gate needs from the store.
type Directory interface {
	UserByEmail(ctx context.Context, email string) (store.User, bool)
}

type Service struct {
	directory Directory
	// allowSeedLogins permits signing in as an actor with no stored
	// credential. A seed-data convenience only; off in production.
	allowSeedLogins bool
}

func NewService(directory Directory, allowSeedLogins bool) *Service {
	return &Service{directory: directory, allowSeedLogins: allowSeedLogins}
}

// Authenticate looks the email up case-insensitively and verifies the
// password against the stored bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (store.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return store.User{}, ErrInvalidCredentials
	}

	user, ok := s.directory.UserByEmail(ctx, email)
	if !ok {
		return store.User{}, ErrInvalidCredentials
	}

	if user.PasswordHash == "" {
		if s.allowSeedLogins {
			return user, nil
		}
		return store.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return store.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// HashPassword produces the stored form of a credential.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
