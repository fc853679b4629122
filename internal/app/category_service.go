package app

import (
	"context"
	"errors"

	"blogapi/internal/domain"
)

// ErrCategoryAssigned indicates that the post already carries the category.
var ErrCategoryAssigned = errors.New("category already assigned")

// CategoryService attaches named categories to posts without duplicating
// category rows or assignments.
type CategoryService struct {
	posts          domain.PostRepository
	categories     domain.CategoryRepository
	postCategories domain.PostCategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(
	posts domain.PostRepository,
	categories domain.CategoryRepository,
	postCategories domain.PostCategoryRepository,
) *CategoryService {
	return &CategoryService{
		posts:          posts,
		categories:     categories,
		postCategories: postCategories,
	}
}

// AssignToPost attaches a named category to a post, creating the category
// row on first use. The lookup-then-create sequence is not wrapped in a
// transaction; two racing requests may still collide on the unique indexes.
func (s *CategoryService) AssignToPost(ctx context.Context, postID uint, name string) (*domain.Category, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	category, err := s.categories.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		pair, err := s.postCategories.Get(ctx, postID, category.ID)
		if err != nil {
			return nil, err
		}
		if pair != nil {
			return nil, ErrCategoryAssigned
		}
	} else {
		category = &domain.Category{Name: name}
		if err := s.categories.Create(ctx, category); err != nil {
			return nil, err
		}
	}

	if err := s.postCategories.Create(ctx, &domain.PostCategory{PostID: postID, CategoryID: category.ID}); err != nil {
		return nil, err
	}
	return category, nil
}

// ListForPost returns the post's categories in assignment order.
func (s *CategoryService) ListForPost(ctx context.Context, postID uint) ([]domain.Category, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	pairs, err := s.postCategories.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Category, 0, len(pairs))
	for _, pair := range pairs {
		category, err := s.categories.GetByID(ctx, pair.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			result = append(result, *category)
		}
	}
	return result, nil
}
