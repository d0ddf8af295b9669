package service

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/models"
)

type AuthService interface {
	Register(ctx context.Context, user models.User, password string) Result[models.User]
	Login(ctx context.Context, email, password string) Result[models.Session]
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetAllUsers(ctx context.Context) Result[[]models.User]
	GetUserDetails(ctx context.Context, id string, claim models.Claims) Result[models.User]
	DeleteUser(ctx context.Context, id string, claim models.Claims) Result[models.MutationResult]
}

type PostService interface {
	GetAllPosts(ctx context.Context) Result[[]models.Post]
	CreatePost(ctx context.Context, post models.Post) Result[models.Post]
	GetPostDetails(ctx context.Context, id string) Result[models.Post]
	UpdatePost(ctx context.Context, id string, update models.PostUpdate) Result[models.MutationResult]
	DeletePost(ctx context.Context, id string) Result[models.MutationResult]
}
