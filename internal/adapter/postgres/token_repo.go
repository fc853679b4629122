package postgres

import (
	"context"
	"errors"

	"blogapi/internal/domain"

	"gorm.io/gorm"
)

// TokenRepo implements domain.TokenRepository.
type TokenRepo struct {
	db *DB
}

// NewTokenRepo wraps a DB as a TokenRepository.
func NewTokenRepo(db *DB) *TokenRepo {
	return &TokenRepo{db: db}
}

var _ domain.TokenRepository = (*TokenRepo)(nil)

// GetByUser retrieves the user's active token row, if any.
func (r *TokenRepo) GetByUser(ctx context.Context, userID uint) (*domain.AuthToken, error) {
	var t domain.AuthToken
	err := r.db.gorm.WithContext(ctx).Where("user_id = ?", userID).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByToken retrieves a token row by its token string.
func (r *TokenRepo) GetByToken(ctx context.Context, token string) (*domain.AuthToken, error) {
	var t domain.AuthToken
	err := r.db.gorm.WithContext(ctx).Where("token = ?", token).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new token row.
func (r *TokenRepo) Create(ctx context.Context, t *domain.AuthToken) error {
	return r.db.gorm.WithContext(ctx).Create(t).Error
}

// Delete removes a token row by its token string.
func (r *TokenRepo) Delete(ctx context.Context, token string) error {
	return r.db.gorm.WithContext(ctx).Where("token = ?", token).Delete(&domain.AuthToken{}).Error
}

// DeleteByUser removes every token row for the user.
func (r *TokenRepo) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.gorm.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.AuthToken{}).Error
}
