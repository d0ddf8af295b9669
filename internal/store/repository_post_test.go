package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postWithAuthorColumns = []string{
	"id", "title", "description", "text", "tags", "published_at", "author_id", "created_at", "updated_at",
	"first_name", "last_name", "email", "created_at", "updated_at",
}

func TestCreatePost(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("encodes tags and returns server-assigned timestamps", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
			WithArgs("p-1", "Hello", "greeting", "Hello, world", []byte(`["go","blog"]`), now, "u-1").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		created, err := repo.CreatePost(testContext(), models.Post{
			ID:          "p-1",
			Title:       "Hello",
			Description: "greeting",
			Text:        "Hello, world",
			Tags:        []string{"go", "blog"},
			PublishedAt: now,
			AuthorID:    "u-1",
		})

		require.NoError(t, err)
		assert.Equal(t, now, created.CreatedAt)
		assert.Equal(t, now, created.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("generates id and stores nil tags as an empty list", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts")).
			WithArgs(sqlmock.AnyArg(), "Hello", "", "", []byte(`[]`), now, "u-1").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		created, err := repo.CreatePost(testContext(), models.Post{
			Title:       "Hello",
			PublishedAt: now,
			AuthorID:    "u-1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		require.NotNil(t, created.Tags)
		assert.Empty(t, created.Tags)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindPostByID(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	t.Run("joins the author row", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = p.author_id")).
			WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows(postWithAuthorColumns).
				AddRow("p-1", "Hello", "greeting", "Hello, world", []byte(`["go"]`), now, "u-1", now, now,
					"John", "Smith", "john.smith@email.com", now, now))

		post, err := repo.FindPostByID(testContext(), "p-1")

		require.NoError(t, err)
		assert.Equal(t, "p-1", post.ID)
		assert.Equal(t, []string{"go"}, post.Tags)
		require.NotNil(t, post.Author)
		assert.Equal(t, "u-1", post.Author.ID, "author id comes from the foreign key")
		assert.Equal(t, "John", post.Author.FirstName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to ErrPostNotFound", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPostRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(postWithAuthorColumns))

		_, err := repo.FindPostByID(testContext(), "missing")

		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestFindPostsByAuthor(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	db, mock := newTestDB(t)
	repo := NewPostRepository(newDBFromSQL(db), logger.Nop())

	columns := []string{"id", "title", "description", "text", "tags", "published_at", "author_id", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE author_id = $1")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p-2", "Second", "", "", []byte(`[]`), now, "u-1", now, now).
			AddRow("p-1", "First", "", "", []byte(`["go"]`), now.Add(-time.Hour), "u-1", now, now))

	posts, err := repo.FindPostsByAuthor(testContext(), "u-1")

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p-2", posts[0].ID)
	assert.Empty(t, posts[0].Tags)
	assert.Equal(t, []string{"go"}, posts[1].Tags)
	assert.Nil(t, posts[0].Author, "author relation is not populated for owned-post listings")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllPosts(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	db, mock := newTestDB(t)
	repo := NewPostRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.published_at DESC")).
		WillReturnRows(sqlmock.NewRows(postWithAuthorColumns).
			AddRow("p-1", "Hello", "", "", []byte(`[]`), now, "u-1", now, now,
				"John", "Smith", "john.smith@email.com", now, now))

	posts, err := repo.GetAllPosts(testContext())

	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "john.smith@email.com", posts[0].Author.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePost(t *testing.T) {
	title := "Renamed"

	db, mock := newTestDB(t)
	repo := NewPostRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE posts SET updated_at = NOW(), title = $1 WHERE id = $2")).
		WithArgs(title, "p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.UpdatePost(testContext(), "p-1", models.PostUpdate{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePost(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPostRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")).
		WithArgs("p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.DeletePost(testContext(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildUpdatePostQuery(t *testing.T) {
	title := "Renamed"
	description := "new description"
	text := "new text"
	tags := []string{"go"}

	t.Run("every field set", func(t *testing.T) {
		query, args, err := buildUpdatePostQuery("p-1", models.PostUpdate{
			Title:       &title,
			Description: &description,
			Text:        &text,
			Tags:        &tags,
		})

		require.NoError(t, err)
		assert.Equal(t, "UPDATE posts SET updated_at = NOW(), title = $1, description = $2, text = $3, tags = $4 WHERE id = $5", query)
		assert.Equal(t, []any{title, description, text, []byte(`["go"]`), "p-1"}, args)
	})

	t.Run("no fields set still touches updated_at", func(t *testing.T) {
		query, args, err := buildUpdatePostQuery("p-1", models.PostUpdate{})

		require.NoError(t, err)
		assert.Equal(t, "UPDATE posts SET updated_at = NOW() WHERE id = $1", query)
		assert.Equal(t, []any{"p-1"}, args)
	})
}
