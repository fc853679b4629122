package postgres

import (
	"context"

	"blogapi/internal/domain"
)

// CommentRepo implements domain.CommentRepository.
type CommentRepo struct {
	db *DB
}

// NewCommentRepo wraps a DB as a CommentRepository.
func NewCommentRepo(db *DB) *CommentRepo {
	return &CommentRepo{db: db}
}

var _ domain.CommentRepository = (*CommentRepo)(nil)

// Create inserts a new comment.
func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	return r.db.gorm.WithContext(ctx).Create(c).Error
}

// ListByPost returns the post's comments in creation order.
func (r *CommentRepo) ListByPost(ctx context.Context, postID uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.gorm.WithContext(ctx).Where("post_id = ?", postID).Order("id").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
