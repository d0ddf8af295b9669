package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/models"
)

// userService is the concrete implementation of UserService. It orchestrates
// user lookups and the cascade delete of a user's posts, applying the
// ownership policy before any protected operation.
type userService struct {
	userRepository store.UserRepository
	postRepository store.PostRepository
	policy         OwnershipPolicy
	logger         *logger.Logger
}

// NewUserService constructs a UserService over the given repositories.
func NewUserService(userRepository store.UserRepository, postRepository store.PostRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		postRepository: postRepository,
		policy:         OwnershipPolicy{},
		logger:         logger,
	}
}

// GetAllUsers lists every registered account. Password hashes are never
// part of the repository projection.
func (s *userService) GetAllUsers(ctx context.Context) Result[[]models.User] {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return Failure[[]models.User](err)
	}

	return Value(users)
}

// GetUserDetails returns the user with the given id together with the posts
// they authored.
//
// Ownership is checked BEFORE existence: a caller asking for another
// identity's details is denied even when that identity does not exist.
// Keep this order; swapping it changes the HTTP code observed by callers.
func (s *userService) GetUserDetails(ctx context.Context, id string, claim models.Claims) Result[models.User] {
	log := logger.FromContext(ctx)

	if err := s.policy.Authorize(id, claim); err != nil {
		log.Debug().Str("id", id).Str("caller", claim.UserID).Msg("user details denied")
		return Failure[models.User](err)
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return Absent[models.User]()
		}

		log.Err(err).Str("id", id).Msg("user lookup failed")
		return Failure[models.User](err)
	}

	posts, err := s.postRepository.FindPostsByAuthor(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("loading user posts failed")
		return Failure[models.User](err)
	}
	user.Posts = posts

	return Value(user)
}

// DeleteUser removes the account with the given id and every post it owns.
//
// Ownership is checked BEFORE existence, mirroring GetUserDetails. The
// cascade is a fan-out of independent post deletions with no surrounding
// transaction: all post deletions complete before the user row is deleted,
// and a failed post deletion aborts the cascade without undoing the
// deletions that already happened.
func (s *userService) DeleteUser(ctx context.Context, id string, claim models.Claims) Result[models.MutationResult] {
	log := logger.FromContext(ctx)

	if err := s.policy.Authorize(id, claim); err != nil {
		log.Debug().Str("id", id).Str("caller", claim.UserID).Msg("user deletion denied")
		return Failure[models.MutationResult](err)
	}

	if _, err := s.userRepository.FindUserByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return Absent[models.MutationResult]()
		}

		log.Err(err).Str("id", id).Msg("user lookup failed")
		return Failure[models.MutationResult](err)
	}

	posts, err := s.postRepository.FindPostsByAuthor(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("loading user posts failed")
		return Failure[models.MutationResult](err)
	}

	for _, post := range posts {
		if _, err := s.postRepository.DeletePost(ctx, post.ID); err != nil {
			log.Err(err).Str("id", id).Str("post_id", post.ID).Msg("cascade post deletion failed")
			return Failure[models.MutationResult](err)
		}
	}

	result, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user deletion failed")
		return Failure[models.MutationResult](err)
	}

	return Value(result)
}
