package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/models"
)

// postService is the concrete implementation of PostService.
//
// Unlike the user operations, every post mutation checks existence FIRST;
// there is no eager ownership gate here. Keep this order; it determines
// which HTTP code a caller observes for a missing post.
type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService over the given repositories.
// The user repository is needed to resolve authors at creation time.
func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetAllPosts lists every post together with its author.
func (s *postService) GetAllPosts(ctx context.Context) Result[[]models.Post] {
	log := logger.FromContext(ctx)

	posts, err := s.postRepository.GetAllPosts(ctx)
	if err != nil {
		log.Err(err).Msg("listing posts failed")
		return Failure[[]models.Post](err)
	}

	return Value(posts)
}

// CreatePost persists a new post for a resolvable author.
//
// The author reference must resolve to an existing user before anything is
// written; otherwise the operation fails with ErrAuthorNotFound and
// persists nothing. The publication timestamp is assigned here and a nil
// tag list defaults to empty.
func (s *postService) CreatePost(ctx context.Context, post models.Post) Result[models.Post] {
	log := logger.FromContext(ctx)

	if post.AuthorID == "" {
		return Failure[models.Post](ErrInvalidDataProvided)
	}

	author, err := s.userRepository.FindUserByID(ctx, post.AuthorID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return Failure[models.Post](ErrAuthorNotFound)
		}

		log.Err(err).Str("author_id", post.AuthorID).Msg("author lookup failed")
		return Failure[models.Post](err)
	}

	post.PublishedAt = time.Now()
	if post.Tags == nil {
		post.Tags = []string{}
	}

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("author_id", post.AuthorID).Msg("post creation ended with error")
		return Failure[models.Post](err)
	}

	created.Author = &author

	return Value(created)
}

// GetPostDetails returns the post with the given id, author included.
func (s *postService) GetPostDetails(ctx context.Context, id string) Result[models.Post] {
	log := logger.FromContext(ctx)

	post, err := s.postRepository.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return Absent[models.Post]()
		}

		log.Err(err).Str("id", id).Msg("post lookup failed")
		return Failure[models.Post](err)
	}

	return Value(post)
}

// UpdatePost applies a partial update to an existing post. The existence
// check runs first; the result is the persistence-layer mutation report
// (affected row count), not the updated entity.
func (s *postService) UpdatePost(ctx context.Context, id string, update models.PostUpdate) Result[models.MutationResult] {
	log := logger.FromContext(ctx)

	if _, err := s.postRepository.FindPostByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return Absent[models.MutationResult]()
		}

		log.Err(err).Str("id", id).Msg("post lookup failed")
		return Failure[models.MutationResult](err)
	}

	result, err := s.postRepository.UpdatePost(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id).Msg("post update failed")
		return Failure[models.MutationResult](err)
	}

	return Value(result)
}

// DeletePost removes an existing post. The existence check runs first and
// a missing post yields absence, so callers see 404 rather than a zero
// affected count.
func (s *postService) DeletePost(ctx context.Context, id string) Result[models.MutationResult] {
	log := logger.FromContext(ctx)

	if _, err := s.postRepository.FindPostByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return Absent[models.MutationResult]()
		}

		log.Err(err).Str("id", id).Msg("post lookup failed")
		return Failure[models.MutationResult](err)
	}

	result, err := s.postRepository.DeletePost(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("post deletion failed")
		return Failure[models.MutationResult](err)
	}

	return Value(result)
}
