package app

import (
	"context"
	"errors"

	"blogapi/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates that another user already owns the email.
	ErrEmailTaken = errors.New("email already in use")
)

// UserService handles account registration and maintenance.
type UserService struct {
	users  domain.UserRepository
	tokens domain.TokenRepository
}

// NewUserService creates a new user service.
func NewUserService(users domain.UserRepository, tokens domain.TokenRepository) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, userName, email, password string) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserName: userName,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update replaces the user's profile and invalidates their active token,
// forcing a fresh login.
func (s *UserService) Update(ctx context.Context, id uint, userName, email, password string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	other, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.UserName = userName
	user.Email = email
	user.Password = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.tokens.DeleteByUser(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and, through the repository, everything hanging
// off them.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	removed, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrUserNotFound
	}
	return nil
}
