package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity claim carried by every issued JWT.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (iss, sub,
// exp, iat) and adds the user's public identity attributes so that
// authenticated handlers can act on the caller without a database round
// trip. A Claims value is decoded per request by the auth middleware and
// discarded when the response is sent; it is never persisted.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the identifier of the authenticated user.
	UserID string `json:"id"`

	// FirstName is the given name of the authenticated user.
	FirstName string `json:"firstName"`

	// LastName is the family name of the authenticated user.
	LastName string `json:"lastName"`

	// Email is the e-mail address of the authenticated user.
	Email string `json:"email"`
}

// Token wraps an issued JWT for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the identity claim set embedded in the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Session is the payload returned by a successful login: the issued token
// together with the public identity of the authenticated user.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
