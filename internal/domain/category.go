package domain

import (
	"context"
	"time"
)

// Category is a named tag shared across posts. Names are globally unique;
// the first post to use a name creates the row.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

// PostCategory links a post to a category. The composite primary key keeps
// the pair unique; CreatedAt fixes the assignment order for listings.
type PostCategory struct {
	PostID     uint      `gorm:"primaryKey" json:"postId"`
	CategoryID uint      `gorm:"primaryKey" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CategoryRepository defines the port for category persistence operations.
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, c *Category) error
}

// PostCategoryRepository defines the port for the post/category join rows.
type PostCategoryRepository interface {
	Get(ctx context.Context, postID, categoryID uint) (*PostCategory, error)
	Create(ctx context.Context, pc *PostCategory) error
	ListByPost(ctx context.Context, postID uint) ([]PostCategory, error)
}
