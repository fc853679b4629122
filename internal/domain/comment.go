package domain

import (
	"context"
	"time"
)

// Comment belongs to one post and records the acting user. Comments are
// immutable after creation.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	PostID    uint      `gorm:"index;not null" json:"postId"`
	Content   string    `gorm:"size:255;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentRepository defines the port for comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	ListByPost(ctx context.Context, postID uint) ([]Comment, error)
}
