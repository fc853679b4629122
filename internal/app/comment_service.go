package app

import (
	"context"

	"blogapi/internal/domain"
)

// CommentService records and lists comments on posts.
type CommentService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(posts domain.PostRepository, comments domain.CommentRepository) *CommentService {
	return &CommentService{
		posts:    posts,
		comments: comments,
	}
}

// AddToPost records a comment on a post. Authorship is attributed to the
// post's owner, not the caller.
func (s *CommentService) AddToPost(ctx context.Context, postID uint, content string) (*domain.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &domain.Comment{
		UserID:  post.UserID,
		PostID:  postID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListForPost returns the post's comments.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]domain.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.comments.ListByPost(ctx, postID)
}
