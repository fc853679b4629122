package domain

import "context"

// AuthToken is an active bearer token row. The token string is the row's
// identity and at most one row exists per user at a time. A row being
// present only means the token is known; expiry is verified separately
// against the token's own claims.
type AuthToken struct {
	Token  string `gorm:"primaryKey;size:512" json:"token"`
	UserID uint   `gorm:"index;not null" json:"userId"`
}

// TokenRepository defines the port for active-token persistence operations.
type TokenRepository interface {
	GetByUser(ctx context.Context, userID uint) (*AuthToken, error)
	GetByToken(ctx context.Context, token string) (*AuthToken, error)
	Create(ctx context.Context, t *AuthToken) error
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uint) error
}
