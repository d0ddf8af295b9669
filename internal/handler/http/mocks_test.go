package http

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/metrics"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/validators"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/prometheus/client_golang/prometheus"
)

// ---- function-field mocks for the service layer ----

type mockAuthService struct {
	registerFn   func(ctx context.Context, user models.User, password string) service.Result[models.User]
	loginFn      func(ctx context.Context, email, password string) service.Result[models.Session]
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User, password string) service.Result[models.User] {
	return m.registerFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) service.Result[models.Session] {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	getAllUsersFn    func(ctx context.Context) service.Result[[]models.User]
	getUserDetailsFn func(ctx context.Context, id string, claim models.Claims) service.Result[models.User]
	deleteUserFn     func(ctx context.Context, id string, claim models.Claims) service.Result[models.MutationResult]
}

func (m *mockUserService) GetAllUsers(ctx context.Context) service.Result[[]models.User] {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserService) GetUserDetails(ctx context.Context, id string, claim models.Claims) service.Result[models.User] {
	return m.getUserDetailsFn(ctx, id, claim)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string, claim models.Claims) service.Result[models.MutationResult] {
	return m.deleteUserFn(ctx, id, claim)
}

type mockPostService struct {
	getAllPostsFn    func(ctx context.Context) service.Result[[]models.Post]
	createPostFn     func(ctx context.Context, post models.Post) service.Result[models.Post]
	getPostDetailsFn func(ctx context.Context, id string) service.Result[models.Post]
	updatePostFn     func(ctx context.Context, id string, update models.PostUpdate) service.Result[models.MutationResult]
	deletePostFn     func(ctx context.Context, id string) service.Result[models.MutationResult]
}

func (m *mockPostService) GetAllPosts(ctx context.Context) service.Result[[]models.Post] {
	return m.getAllPostsFn(ctx)
}

func (m *mockPostService) CreatePost(ctx context.Context, post models.Post) service.Result[models.Post] {
	return m.createPostFn(ctx, post)
}

func (m *mockPostService) GetPostDetails(ctx context.Context, id string) service.Result[models.Post] {
	return m.getPostDetailsFn(ctx, id)
}

func (m *mockPostService) UpdatePost(ctx context.Context, id string, update models.PostUpdate) service.Result[models.MutationResult] {
	return m.updatePostFn(ctx, id, update)
}

func (m *mockPostService) DeletePost(ctx context.Context, id string) service.Result[models.MutationResult] {
	return m.deletePostFn(ctx, id)
}

// ---- shared helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services:  services,
		validator: validators.New(),
		collector: metrics.NewCollector(prometheus.NewRegistry()),
		version:   "test",
		logger:    logger.Nop(),
	}
}
