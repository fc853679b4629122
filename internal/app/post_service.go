package app

import (
	"context"
	"errors"
	"time"

	"blogapi/internal/domain"
)

// ErrPostNotFound indicates that the referenced post does not exist.
var ErrPostNotFound = errors.New("post not found")

// CommentView is a comment as embedded in a post response, with the
// foreign keys stripped.
type CommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostDetail is a post with its owner, categories and comments embedded.
type PostDetail struct {
	ID         uint              `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	User       *domain.User      `json:"user"`
	Categories []domain.Category `json:"categories"`
	Comments   []CommentView     `json:"comments"`
}

// PostService handles posts and their embedded associations.
type PostService struct {
	posts          domain.PostRepository
	users          domain.UserRepository
	comments       domain.CommentRepository
	categories     domain.CategoryRepository
	postCategories domain.PostCategoryRepository
}

// NewPostService creates a new post service.
func NewPostService(
	posts domain.PostRepository,
	users domain.UserRepository,
	comments domain.CommentRepository,
	categories domain.CategoryRepository,
	postCategories domain.PostCategoryRepository,
) *PostService {
	return &PostService{
		posts:          posts,
		users:          users,
		comments:       comments,
		categories:     categories,
		postCategories: postCategories,
	}
}

// Create stores a post for an existing user and returns its shaped view.
// No post row is created when the owner is missing.
func (s *PostService) Create(ctx context.Context, userID uint, title, content string) (*PostDetail, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &domain.Post{UserID: userID, Title: title, Content: content}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.detail(ctx, post, user)
}

// Get returns one post with owner, categories and comments embedded.
func (s *PostService) Get(ctx context.Context, id uint) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.detail(ctx, post, nil)
}

// List returns every post in shaped form.
func (s *PostService) List(ctx context.Context) ([]PostDetail, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PostDetail, 0, len(posts))
	for i := range posts {
		d, err := s.detail(ctx, &posts[i], nil)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	return result, nil
}

// Update replaces the post's title and content.
func (s *PostService) Update(ctx context.Context, id uint, title, content string) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := s.posts.Update(ctx, id, title, content); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the post along with its comments and category links.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	removed, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *PostService) detail(ctx context.Context, post *domain.Post, user *domain.User) (*PostDetail, error) {
	if user == nil {
		var err error
		user, err = s.users.GetByID(ctx, post.UserID)
		if err != nil {
			return nil, err
		}
	}

	pairs, err := s.postCategories.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(pairs))
	for _, pair := range pairs {
		category, err := s.categories.GetByID(ctx, pair.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			categories = append(categories, *category)
		}
	}

	comments, err := s.comments.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}

	return &PostDetail{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
		User:       user,
		Categories: categories,
		Comments:   views,
	}, nil
}
