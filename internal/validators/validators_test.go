package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, fe := range errs {
		names = append(names, fe.Field)
	}
	return names
}

func TestCheck_RegisterRequest(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		errs := v.Check(RegisterRequest{
			FirstName: "John",
			LastName:  "Smith",
			Email:     "john.smith@email.com",
			Password:  "longenough",
		})
		assert.Nil(t, errs)
	})

	t.Run("reports every violation with json field names", func(t *testing.T) {
		errs := v.Check(RegisterRequest{
			FirstName: "John",
			LastName:  "Smith",
			Email:     "not-an-email",
			Password:  "short",
		})

		require.Len(t, errs, 2)
		assert.Equal(t, []string{"email", "password"}, fields(errs))
		assert.Equal(t, "must be a valid e-mail address", errs[0].Message)
		assert.Equal(t, "must be at least 8 characters long", errs[1].Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := v.Check(RegisterRequest{})

		require.Len(t, errs, 4)
		assert.Equal(t, []string{"firstName", "lastName", "email", "password"}, fields(errs))
		assert.Equal(t, "is required", errs[0].Message)
	})

	t.Run("name over column width", func(t *testing.T) {
		errs := v.Check(RegisterRequest{
			FirstName: "an-absurdly-long-first-name-over-thirty",
			LastName:  "Smith",
			Email:     "john.smith@email.com",
			Password:  "longenough",
		})

		require.Len(t, errs, 1)
		assert.Equal(t, "firstName", errs[0].Field)
		assert.Equal(t, "must be at most 30 characters long", errs[0].Message)
	})
}

func TestCheck_LoginRequest(t *testing.T) {
	v := New()

	assert.Nil(t, v.Check(LoginRequest{Email: "john.smith@email.com", Password: "1234"}))

	errs := v.Check(LoginRequest{Email: "john.smith@email.com"})
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
}

func TestCheck_CreatePostRequest(t *testing.T) {
	v := New()

	valid := CreatePostRequest{
		Title:       "Hello",
		Description: "a greeting",
		Text:        "Hello, world",
		AuthorID:    "7d5edf5a-1111-4f3a-9c3f-000000000001",
	}

	t.Run("valid without tags", func(t *testing.T) {
		assert.Nil(t, v.Check(valid))
	})

	t.Run("valid with tags", func(t *testing.T) {
		req := valid
		req.Tags = []string{"go", "blog"}
		assert.Nil(t, v.Check(req))
	})

	t.Run("author id must be a uuid", func(t *testing.T) {
		req := valid
		req.AuthorID = "42"

		errs := v.Check(req)
		require.Len(t, errs, 1)
		assert.Equal(t, FieldError{Field: "authorId", Message: "must be a valid UUID"}, errs[0])
	})

	t.Run("blank tag entries are rejected", func(t *testing.T) {
		req := valid
		req.Tags = []string{"go", ""}

		errs := v.Check(req)
		require.Len(t, errs, 1)
		assert.Equal(t, "is required", errs[0].Message)
	})
}

func TestCheck_UpdatePostRequest(t *testing.T) {
	v := New()

	t.Run("empty update is valid", func(t *testing.T) {
		assert.Nil(t, v.Check(UpdatePostRequest{}))
	})

	t.Run("present fields are still bounded", func(t *testing.T) {
		title := "a title that is far longer than the column allows"
		errs := v.Check(UpdatePostRequest{Title: &title})

		require.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
		assert.Equal(t, "must be at most 25 characters long", errs[0].Message)
	})
}

func TestCheck_BirdRequest(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, v.Check(BirdRequest{Name: "Eagle", Color: []string{"brown", "white"}}))
	})

	t.Run("empty color list", func(t *testing.T) {
		errs := v.Check(BirdRequest{Name: "Eagle", Color: []string{}})

		require.Len(t, errs, 1)
		assert.Equal(t, "color", errs[0].Field)
	})

	t.Run("missing name", func(t *testing.T) {
		errs := v.Check(BirdRequest{Color: []string{"brown"}})

		require.Len(t, errs, 1)
		assert.Equal(t, FieldError{Field: "name", Message: "is required"}, errs[0])
	})
}

func TestCheck_NonStructPayload(t *testing.T) {
	v := New()

	errs := v.Check("not a struct")

	require.Len(t, errs, 1)
	assert.Equal(t, "invalid request payload", errs[0].Message)
}
