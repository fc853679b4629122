package domain

import (
	"context"
	"time"
)

// Post is a blog entry owned by exactly one user.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"size:255;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostRepository defines the port for post persistence operations.
type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Create(ctx context.Context, p *Post) error
	Update(ctx context.Context, id uint, title, content string) error
	// Delete removes the post along with its comments and category links,
	// reporting the number of post rows removed.
	Delete(ctx context.Context, id uint) (int64, error)
}
