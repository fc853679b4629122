// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"blogapi/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided email or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTokenNotFound indicates that the presented token is not in the active set.
	ErrTokenNotFound = errors.New("token not found")
	// ErrTokenInvalid indicates that the presented token failed signature or expiry verification.
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// AuthService issues, recognizes and rotates bearer tokens.
type AuthService struct {
	users  domain.UserRepository
	tokens domain.TokenRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new authentication service. ttl bounds the
// lifetime of freshly minted tokens.
func NewAuthService(users domain.UserRepository, tokens domain.TokenRepository, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		secret: secret,
		ttl:    ttl,
	}
}

// Login checks credentials and returns a bearer token. A still-valid token
// already on record for the user is returned unchanged; an expired or
// tampered one is deleted and replaced.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

// LoginSSO issues a token for an externally authenticated identity,
// creating the account on first sight. SSO accounts carry an empty password
// hash, so password login stays impossible for them.
func (s *AuthService) LoginSSO(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		name := email
		if i := strings.IndexByte(email, '@'); i > 0 {
			name = email[:i]
		}
		if len(name) > 20 {
			name = name[:20]
		}
		user = &domain.User{UserName: name, Email: email}
		if err := s.users.Create(ctx, user); err != nil {
			return "", err
		}
	}
	return s.issueToken(ctx, user)
}

func (s *AuthService) issueToken(ctx context.Context, user *domain.User) (string, error) {
	existing, err := s.tokens.GetByUser(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		if _, err := parseToken(existing.Token, s.secret); err == nil {
			return existing.Token, nil
		}
		// Stale row: rotate it out before minting a replacement.
		if err := s.tokens.Delete(ctx, existing.Token); err != nil {
			return "", err
		}
	}

	token, err := signToken(user.ID, user.Email, s.secret, s.ttl)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Create(ctx, &domain.AuthToken{Token: token, UserID: user.ID}); err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate gates protected routes. A token unknown to the store and a
// known token that fails verification both reject the request. The stale
// row is deliberately left in place here; it is only replaced on the next
// login.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Claims, error) {
	row, err := s.tokens.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrTokenNotFound
	}

	claims, err := parseToken(token, s.secret)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
