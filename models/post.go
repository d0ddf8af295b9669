package models

import "time"

// Post represents a single blog article. Every post has exactly one author
// assigned at creation time; AuthorID is never empty for a persisted post.
type Post struct {
	// ID is the unique identifier of the post (UUID v4, server-assigned).
	ID string `json:"id"`

	// Title is the headline of the post. Limited to 25 characters.
	Title string `json:"title"`

	// Description is a short summary shown in listings. Limited to 50 characters.
	Description string `json:"description"`

	// Text is the full body of the post.
	Text string `json:"text"`

	// Tags is an optional list of labels. Defaults to an empty list,
	// never null, so clients can always range over it.
	Tags []string `json:"tags"`

	// PublishedAt is set by the server at creation time.
	PublishedAt time.Time `json:"publishedAt"`

	// AuthorID references the owning user.
	AuthorID string `json:"authorId"`

	// Author is the owning user record. Populated only by queries that
	// request the relation.
	Author *User `json:"author,omitempty"`

	// CreatedAt is the timestamp when the post row was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the post.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate describes a partial update of a post. Nil fields are left
// untouched by the persistence layer.
type PostUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Text        *string   `json:"text,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}
