package store

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) (models.MutationResult, error)
}

// PostRepository is the persistence contract for blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, id string) (models.Post, error)
	FindPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.MutationResult, error)
	DeletePost(ctx context.Context, id string) (models.MutationResult, error)
}
