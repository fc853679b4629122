package app

import (
	"context"
	"errors"

	"blogapi/internal/domain"
)

type mockUserRepo struct {
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id uint) (*domain.User, error)
	listFn       func(ctx context.Context) ([]domain.User, error)
	createFn     func(ctx context.Context, u *domain.User) error
	updateFn     func(ctx context.Context, u *domain.User) error
	deleteFn     func(ctx context.Context, id uint) (int64, error)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	u.ID = 1
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 0, errors.New("not implemented")
}

type mockTokenRepo struct {
	getByUserFn    func(ctx context.Context, userID uint) (*domain.AuthToken, error)
	getByTokenFn   func(ctx context.Context, token string) (*domain.AuthToken, error)
	createFn       func(ctx context.Context, t *domain.AuthToken) error
	deleteFn       func(ctx context.Context, token string) error
	deleteByUserFn func(ctx context.Context, userID uint) error
}

func (m *mockTokenRepo) GetByUser(ctx context.Context, userID uint) (*domain.AuthToken, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTokenRepo) GetByToken(ctx context.Context, token string) (*domain.AuthToken, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockTokenRepo) Create(ctx context.Context, t *domain.AuthToken) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return nil
}

func (m *mockTokenRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockTokenRepo) DeleteByUser(ctx context.Context, userID uint) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return nil
}

type mockPostRepo struct {
	getByIDFn func(ctx context.Context, id uint) (*domain.Post, error)
	listFn    func(ctx context.Context) ([]domain.Post, error)
	createFn  func(ctx context.Context, p *domain.Post) error
	updateFn  func(ctx context.Context, id uint, title, content string) error
	deleteFn  func(ctx context.Context, id uint) (int64, error)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uint) (*domain.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) List(ctx context.Context) ([]domain.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepo) Create(ctx context.Context, p *domain.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	p.ID = 1
	return nil
}

func (m *mockPostRepo) Update(ctx context.Context, id uint, title, content string) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, title, content)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 0, errors.New("not implemented")
}

type mockCommentRepo struct {
	createFn     func(ctx context.Context, c *domain.Comment) error
	listByPostFn func(ctx context.Context, postID uint) ([]domain.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	c.ID = 1
	return nil
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID uint) ([]domain.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return nil, nil
}

type mockCategoryRepo struct {
	getByIDFn   func(ctx context.Context, id uint) (*domain.Category, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Category, error)
	createFn    func(ctx context.Context, c *domain.Category) error
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	c.ID = 1
	return nil
}

type mockPostCategoryRepo struct {
	getFn        func(ctx context.Context, postID, categoryID uint) (*domain.PostCategory, error)
	createFn     func(ctx context.Context, pc *domain.PostCategory) error
	listByPostFn func(ctx context.Context, postID uint) ([]domain.PostCategory, error)
}

func (m *mockPostCategoryRepo) Get(ctx context.Context, postID, categoryID uint) (*domain.PostCategory, error) {
	if m.getFn != nil {
		return m.getFn(ctx, postID, categoryID)
	}
	return nil, nil
}

func (m *mockPostCategoryRepo) Create(ctx context.Context, pc *domain.PostCategory) error {
	if m.createFn != nil {
		return m.createFn(ctx, pc)
	}
	return nil
}

func (m *mockPostCategoryRepo) ListByPost(ctx context.Context, postID uint) ([]domain.PostCategory, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return nil, nil
}
