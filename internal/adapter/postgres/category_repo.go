package postgres

import (
	"context"
	"errors"

	"blogapi/internal/domain"

	"gorm.io/gorm"
)

// CategoryRepo implements domain.CategoryRepository.
type CategoryRepo struct {
	db *DB
}

// NewCategoryRepo wraps a DB as a CategoryRepository.
func NewCategoryRepo(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

var _ domain.CategoryRepository = (*CategoryRepo)(nil)

// GetByID retrieves a category by id.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	var c domain.Category
	err := r.db.gorm.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByName retrieves a category by exact name.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.gorm.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category.
func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	return r.db.gorm.WithContext(ctx).Create(c).Error
}

// PostCategoryRepo implements domain.PostCategoryRepository.
type PostCategoryRepo struct {
	db *DB
}

// NewPostCategoryRepo wraps a DB as a PostCategoryRepository.
func NewPostCategoryRepo(db *DB) *PostCategoryRepo {
	return &PostCategoryRepo{db: db}
}

var _ domain.PostCategoryRepository = (*PostCategoryRepo)(nil)

// Get retrieves one post/category pair.
func (r *PostCategoryRepo) Get(ctx context.Context, postID, categoryID uint) (*domain.PostCategory, error) {
	var pc domain.PostCategory
	err := r.db.gorm.WithContext(ctx).
		Where("post_id = ? AND category_id = ?", postID, categoryID).
		First(&pc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

// Create inserts a new pair.
func (r *PostCategoryRepo) Create(ctx context.Context, pc *domain.PostCategory) error {
	return r.db.gorm.WithContext(ctx).Create(pc).Error
}

// ListByPost returns the post's pairs in assignment order.
func (r *PostCategoryRepo) ListByPost(ctx context.Context, postID uint) ([]domain.PostCategory, error) {
	var pairs []domain.PostCategory
	err := r.db.gorm.WithContext(ctx).Where("post_id = ?", postID).Order("created_at").Find(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}
