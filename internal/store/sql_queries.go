package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-blog-platform/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, first_name, last_name, email, password)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, first_name, last_name, email, created_at, updated_at;`

	findUserByEmail = `SELECT id, first_name, last_name, email, password, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, first_name, last_name, email, created_at, updated_at
    FROM users
    WHERE id = $1;`

	getAllUsers = `SELECT id, first_name, last_name, email, created_at, updated_at
    FROM users
    ORDER BY created_at;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createPost = `INSERT INTO posts (id, title, description, text, tags, published_at, author_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING created_at, updated_at;`

	findPostByID = `SELECT
        p.id, p.title, p.description, p.text, p.tags, p.published_at, p.author_id, p.created_at, p.updated_at,
        u.first_name, u.last_name, u.email, u.created_at, u.updated_at
    FROM posts p
    JOIN users u ON u.id = p.author_id
    WHERE p.id = $1;`

	findPostsByAuthor = `SELECT id, title, description, text, tags, published_at, author_id, created_at, updated_at
    FROM posts
    WHERE author_id = $1
    ORDER BY published_at DESC;`

	getAllPosts = `SELECT
        p.id, p.title, p.description, p.text, p.tags, p.published_at, p.author_id, p.created_at, p.updated_at,
        u.first_name, u.last_name, u.email, u.created_at, u.updated_at
    FROM posts p
    JOIN users u ON u.id = p.author_id
    ORDER BY p.published_at DESC;`

	deletePost = `DELETE FROM posts WHERE id = $1;`
)

// buildUpdatePostQuery dynamically builds a partial UPDATE statement for the
// posts table. Only non-nil fields of update produce SET clauses; updated_at
// is always touched so the row records the modification time.
func buildUpdatePostQuery(id string, update models.PostUpdate) (string, []any, error) {
	builder := sq.Update("posts").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}

	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}

	if update.Text != nil {
		builder = builder.Set("text", *update.Text)
	}

	if update.Tags != nil {
		tags, err := json.Marshal(*update.Tags)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Set("tags", tags)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// encodeTags serialises a tag list for storage in the jsonb tags column.
// A nil slice is stored as an empty list so reads never yield null.
func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}

	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return encoded, nil
}

// decodeTags restores a tag list from its jsonb representation.
func decodeTags(raw []byte) ([]string, error) {
	tags := make([]string, 0)
	if len(raw) == 0 {
		return tags, nil
	}

	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tags, nil
}
