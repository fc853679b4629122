package postgres

import (
	"context"
	"errors"

	"blogapi/internal/domain"

	"gorm.io/gorm"
)

// PostRepo implements domain.PostRepository.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

var _ domain.PostRepository = (*PostRepo)(nil)

// GetByID retrieves a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id uint) (*domain.Post, error) {
	var p domain.Post
	err := r.db.gorm.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := r.db.gorm.WithContext(ctx).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts a new post.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	return r.db.gorm.WithContext(ctx).Create(p).Error
}

// Update replaces the post's title and content.
func (r *PostRepo) Update(ctx context.Context, id uint, title, content string) error {
	return r.db.gorm.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "content": content}).Error
}

// Delete removes the post and cascades to its comments and category links.
func (r *PostRepo) Delete(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := r.db.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&domain.PostCategory{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&domain.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	return removed, err
}
