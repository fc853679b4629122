// Package memory implements the domain repositories in memory for
// development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"blogapi/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu             sync.Mutex
	users          []*domain.User
	posts          []*domain.Post
	comments       []*domain.Comment
	categories     []*domain.Category
	postCategories []domain.PostCategory
	tokens         []*domain.AuthToken

	userIDCounter     uint
	postIDCounter     uint
	commentIDCounter  uint
	categoryIDCounter uint
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.PostRepository = (*PostRepo)(nil)
var _ domain.CommentRepository = (*CommentRepo)(nil)
var _ domain.CategoryRepository = (*CategoryRepo)(nil)
var _ domain.PostCategoryRepository = (*PostCategoryRepo)(nil)
var _ domain.TokenRepository = (*TokenRepo)(nil)

// --- UserRepository ---

// UserRepo implements user repository operations on DB.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByEmail retrieves a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Email == email {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.ID == id {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// List returns all users.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]domain.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		result = append(result, *u)
	}
	return result, nil
}

// Create inserts a new user and assigns its id.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.userIDCounter++
	u.ID = r.db.userIDCounter
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	r.db.users = append(r.db.users, &stored)
	return nil
}

// Update replaces the stored user.
func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, stored := range r.db.users {
		if stored.ID == u.ID {
			u.UpdatedAt = time.Now()
			copied := *u
			r.db.users[i] = &copied
			return nil
		}
	}
	return nil
}

// Delete removes the user and everything hanging off them.
func (r *UserRepo) Delete(ctx context.Context, id uint) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := -1
	for i, u := range r.db.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, nil
	}

	postOwned := make(map[uint]bool)
	for _, p := range r.db.posts {
		if p.UserID == id {
			postOwned[p.ID] = true
		}
	}

	posts := r.db.posts[:0]
	for _, p := range r.db.posts {
		if p.UserID != id {
			posts = append(posts, p)
		}
	}
	r.db.posts = posts

	comments := r.db.comments[:0]
	for _, c := range r.db.comments {
		if c.UserID != id && !postOwned[c.PostID] {
			comments = append(comments, c)
		}
	}
	r.db.comments = comments

	pairs := r.db.postCategories[:0]
	for _, pc := range r.db.postCategories {
		if !postOwned[pc.PostID] {
			pairs = append(pairs, pc)
		}
	}
	r.db.postCategories = pairs

	tokens := r.db.tokens[:0]
	for _, t := range r.db.tokens {
		if t.UserID != id {
			tokens = append(tokens, t)
		}
	}
	r.db.tokens = tokens

	r.db.users = append(r.db.users[:idx], r.db.users[idx+1:]...)
	return 1, nil
}

// --- PostRepository ---

// PostRepo implements post repository operations on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// GetByID retrieves a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id uint) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			ret := *p
			return &ret, nil
		}
	}
	return nil, nil
}

// List returns all posts.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]domain.Post, 0, len(r.db.posts))
	for _, p := range r.db.posts {
		result = append(result, *p)
	}
	return result, nil
}

// Create inserts a new post and assigns its id.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.postIDCounter++
	p.ID = r.db.postIDCounter
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	stored := *p
	r.db.posts = append(r.db.posts, &stored)
	return nil
}

// Update replaces the post's title and content.
func (r *PostRepo) Update(ctx context.Context, id uint, title, content string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			p.Title = title
			p.Content = content
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// Delete removes the post along with its comments and category links.
func (r *PostRepo) Delete(ctx context.Context, id uint) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := -1
	for i, p := range r.db.posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, nil
	}

	comments := r.db.comments[:0]
	for _, c := range r.db.comments {
		if c.PostID != id {
			comments = append(comments, c)
		}
	}
	r.db.comments = comments

	pairs := r.db.postCategories[:0]
	for _, pc := range r.db.postCategories {
		if pc.PostID != id {
			pairs = append(pairs, pc)
		}
	}
	r.db.postCategories = pairs

	r.db.posts = append(r.db.posts[:idx], r.db.posts[idx+1:]...)
	return 1, nil
}

// --- CommentRepository ---

// CommentRepo implements comment repository operations on DB.
type CommentRepo struct {
	db *DB
}

// NewCommentRepo wraps a DB as a CommentRepository.
func NewCommentRepo(db *DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create inserts a new comment and assigns its id.
func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.commentIDCounter++
	c.ID = r.db.commentIDCounter
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := *c
	r.db.comments = append(r.db.comments, &stored)
	return nil
}

// ListByPost returns the post's comments in creation order.
func (r *CommentRepo) ListByPost(ctx context.Context, postID uint) ([]domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.Comment
	for _, c := range r.db.comments {
		if c.PostID == postID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// --- CategoryRepository ---

// CategoryRepo implements category repository operations on DB.
type CategoryRepo struct {
	db *DB
}

// NewCategoryRepo wraps a DB as a CategoryRepository.
func NewCategoryRepo(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetByID retrieves a category by id.
func (r *CategoryRepo) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.categories {
		if c.ID == id {
			ret := *c
			return &ret, nil
		}
	}
	return nil, nil
}

// GetByName retrieves a category by exact name.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.categories {
		if c.Name == name {
			ret := *c
			return &ret, nil
		}
	}
	return nil, nil
}

// Create inserts a new category and assigns its id.
func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.categoryIDCounter++
	c.ID = r.db.categoryIDCounter

	stored := *c
	r.db.categories = append(r.db.categories, &stored)
	return nil
}

// --- PostCategoryRepository ---

// PostCategoryRepo implements join-row repository operations on DB.
type PostCategoryRepo struct {
	db *DB
}

// NewPostCategoryRepo wraps a DB as a PostCategoryRepository.
func NewPostCategoryRepo(db *DB) *PostCategoryRepo {
	return &PostCategoryRepo{db: db}
}

// Get retrieves one post/category pair.
func (r *PostCategoryRepo) Get(ctx context.Context, postID, categoryID uint) (*domain.PostCategory, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, pc := range r.db.postCategories {
		if pc.PostID == postID && pc.CategoryID == categoryID {
			ret := pc
			return &ret, nil
		}
	}
	return nil, nil
}

// Create inserts a new pair.
func (r *PostCategoryRepo) Create(ctx context.Context, pc *domain.PostCategory) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	pc.CreatedAt = time.Now()
	r.db.postCategories = append(r.db.postCategories, *pc)
	return nil
}

// ListByPost returns the post's pairs in creation order.
func (r *PostCategoryRepo) ListByPost(ctx context.Context, postID uint) ([]domain.PostCategory, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var result []domain.PostCategory
	for _, pc := range r.db.postCategories {
		if pc.PostID == postID {
			result = append(result, pc)
		}
	}
	return result, nil
}

// --- TokenRepository ---

// TokenRepo implements token repository operations on DB.
type TokenRepo struct {
	db *DB
}

// NewTokenRepo wraps a DB as a TokenRepository.
func NewTokenRepo(db *DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// GetByUser retrieves the user's active token row, if any.
func (r *TokenRepo) GetByUser(ctx context.Context, userID uint) (*domain.AuthToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, t := range r.db.tokens {
		if t.UserID == userID {
			ret := *t
			return &ret, nil
		}
	}
	return nil, nil
}

// GetByToken retrieves a token row by its token string.
func (r *TokenRepo) GetByToken(ctx context.Context, token string) (*domain.AuthToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, t := range r.db.tokens {
		if t.Token == token {
			ret := *t
			return &ret, nil
		}
	}
	return nil, nil
}

// Create inserts a new token row.
func (r *TokenRepo) Create(ctx context.Context, t *domain.AuthToken) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored := *t
	r.db.tokens = append(r.db.tokens, &stored)
	return nil
}

// Delete removes a token row by its token string.
func (r *TokenRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, t := range r.db.tokens {
		if t.Token == token {
			r.db.tokens = append(r.db.tokens[:i], r.db.tokens[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteByUser removes every token row for the user.
func (r *TokenRepo) DeleteByUser(ctx context.Context, userID uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tokens := r.db.tokens[:0]
	for _, t := range r.db.tokens {
		if t.UserID != userID {
			tokens = append(tokens, t)
		}
	}
	r.db.tokens = tokens
	return nil
}
