package service

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/models"
)

// ---- function-field mocks for the persistence layer ----

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, id string) (models.User, error)
	getAllUsersFn     func(ctx context.Context) ([]models.User, error)
	deleteUserFn      func(ctx context.Context, id string) (models.MutationResult, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return m.findUserByIDFn(ctx, id)
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id string) (models.MutationResult, error) {
	return m.deleteUserFn(ctx, id)
}

type mockPostRepository struct {
	createPostFn        func(ctx context.Context, post models.Post) (models.Post, error)
	findPostByIDFn      func(ctx context.Context, id string) (models.Post, error)
	findPostsByAuthorFn func(ctx context.Context, authorID string) ([]models.Post, error)
	getAllPostsFn       func(ctx context.Context) ([]models.Post, error)
	updatePostFn        func(ctx context.Context, id string, update models.PostUpdate) (models.MutationResult, error)
	deletePostFn        func(ctx context.Context, id string) (models.MutationResult, error)
}

func (m *mockPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return m.createPostFn(ctx, post)
}

func (m *mockPostRepository) FindPostByID(ctx context.Context, id string) (models.Post, error) {
	return m.findPostByIDFn(ctx, id)
}

func (m *mockPostRepository) FindPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return m.findPostsByAuthorFn(ctx, authorID)
}

func (m *mockPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return m.getAllPostsFn(ctx)
}

func (m *mockPostRepository) UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.MutationResult, error) {
	return m.updatePostFn(ctx, id, update)
}

func (m *mockPostRepository) DeletePost(ctx context.Context, id string) (models.MutationResult, error) {
	return m.deletePostFn(ctx, id)
}
