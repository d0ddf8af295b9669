package http

// Caller-facing messages. These strings are part of the API contract;
// clients match on them.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidToken       = "Invalid token"
	MsgUnauthorized       = "Unauthorized"

	MsgUserAlreadyExists = "User already exists"
	MsgUserNotFound      = "User not found"
	MsgUserDeleted       = "User deleted successfully"
	MsgUserCreated       = "User created successfully"

	MsgPostNotFound   = "Post not found"
	MsgPostDeleted    = "Post deleted successfully"
	MsgPostCreated    = "Post created successfully"
	MsgAuthorNotFound = "Author not found"
	MsgPostUpdated    = "Post updated successfully"

	MsgInvalidSeason = "Invalid season"
	MsgInvalidJSON   = "Invalid JSON was passed"
)
