package service

import (
	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
	PostService PostService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		UserService: NewUserService(storages.UserRepository, storages.PostRepository, logger),
		PostService: NewPostService(storages.PostRepository, storages.UserRepository, logger),
	}
}
