package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/google/uuid"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// It executes all post CRUD operations against the "posts" table using the
// embedded [*DB] connection; list and detail queries join the author row.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns it with server-assigned fields
// (CreatedAt, UpdatedAt). The identifier is generated here when the caller
// did not provide one; the author reference and publication time must
// already be set by the service layer.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	tags, err := encodeTags(post.Tags)
	if err != nil {
		return models.Post{}, err
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	row := r.db.QueryRowContext(ctx, createPost, post.ID, post.Title, post.Description, post.Text, tags, post.PublishedAt, post.AuthorID)

	if err := row.Scan(&post.CreatedAt, &post.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Str("author_id", post.AuthorID).Msg("error: post was not created")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// FindPostByID retrieves a single post together with its author record.
//
// Returns [ErrPostNotFound] when no post matches.
func (r *postRepository) FindPostByID(ctx context.Context, id string) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findPostByID, id)

	post, err := scanPostWithAuthor(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.FindPostByID").Str("id", id).Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// FindPostsByAuthor retrieves every post owned by the given user, newest
// first. The author relation is not populated; callers already hold the
// owning user. Returns an empty slice when the user has no posts.
func (r *postRepository) FindPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findPostsByAuthor, authorID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostsByAuthor").Str("author_id", authorID).Msg("failed to execute query for getting author posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)

	for rows.Next() {
		var post models.Post
		var rawTags []byte

		scanErr := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Description,
			&post.Text,
			&rawTags,
			&post.PublishedAt,
			&post.AuthorID,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.FindPostsByAuthor").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if post.Tags, scanErr = decodeTags(rawTags); scanErr != nil {
			return nil, scanErr
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.FindPostsByAuthor").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// GetAllPosts retrieves every post with its author record, newest first.
// Returns an empty slice when the table is empty.
func (r *postRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllPosts)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetAllPosts").Msg("failed to execute query for getting all posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)

	for rows.Next() {
		post, scanErr := scanPostWithAuthor(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.GetAllPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.GetAllPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// UpdatePost applies a partial update built by [buildUpdatePostQuery] and
// reports the number of affected rows. It does not return the updated
// entity; the mutation result mirrors what the database reports.
func (r *postRepository) UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.MutationResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Str("id", id).Msg("failed to build update query")
		return models.MutationResult{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Str("id", id).Msg("failed to update post")
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.MutationResult{Affected: affected}, nil
}

// DeletePost removes the post row with the given identifier and reports the
// number of affected rows.
func (r *postRepository) DeletePost(ctx context.Context, id string) (models.MutationResult, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Str("id", id).Msg("failed to delete post")
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.MutationResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.MutationResult{Affected: affected}, nil
}

// scanPostWithAuthor scans one row produced by the post+author JOIN queries.
// The scan callback abstracts over *sql.Row and *sql.Rows.
func scanPostWithAuthor(scan func(dest ...any) error) (models.Post, error) {
	var post models.Post
	var author models.User
	var rawTags []byte

	err := scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.Text,
		&rawTags,
		&post.PublishedAt,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.FirstName,
		&author.LastName,
		&author.Email,
		&author.CreatedAt,
		&author.UpdatedAt,
	)
	if err != nil {
		return models.Post{}, err
	}

	if post.Tags, err = decodeTags(rawTags); err != nil {
		return models.Post{}, err
	}

	author.ID = post.AuthorID
	post.Author = &author

	return post, nil
}
