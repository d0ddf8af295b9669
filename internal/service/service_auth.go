package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing passwords at
	// registration. Zero selects the package default.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The duplicate-email check runs before the insert and yields ErrEmailTaken
// as a tagged failure, never a thrown error. The check is not atomic
// against concurrent registrations; a race loser hits the unique index
// instead and is mapped to the same reason. The password is bcrypt-hashed
// before it ever reaches the repository, and the returned record carries
// no hash.
func (a *authService) Register(ctx context.Context, user models.User, password string) Result[models.User] {
	log := logger.FromContext(ctx)

	if user.Email == "" || password == "" {
		return Failure[models.User](ErrInvalidDataProvided)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return Failure[models.User](ErrEmailTaken)
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", user.Email).Msg("duplicate email lookup failed")
		return Failure[models.User](err)
	}

	hashed, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return Failure[models.User](err)
	}
	user.Password = hashed

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			// lost the race against a concurrent registration
			return Failure[models.User](ErrEmailTaken)
		}

		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return Failure[models.User](err)
	}

	registered.Password = ""

	return Value(registered)
}

// Login authenticates an existing user and issues a session token.
//
// The e-mail lookup is case-insensitive (citext column). A nonexistent
// account fails with ErrUserNotFound and a bad password with
// ErrWrongPassword; the two reasons stay distinguishable here so the
// handler can decide how much to reveal.
func (a *authService) Login(ctx context.Context, email, password string) Result[models.Session] {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return Failure[models.Session](ErrInvalidDataProvided)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return Failure[models.Session](ErrUserNotFound)
		}

		log.Err(err).Msg("user search by email failed")
		return Failure[models.Session](err)
	}

	if !utils.ComparePassword(foundUser.Password, password) {
		log.Debug().Str("id", foundUser.ID).Msg("wrong password")
		return Failure[models.Session](ErrWrongPassword)
	}

	foundUser.Password = ""

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("creation of token failed")
		return Failure[models.Session](ErrTokenCreationFailed)
	}

	return Value(models.Session{
		Token: token.SignedString,
		User:  foundUser,
	})
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. A verifiable token whose payload is not the
// structured identity claim is rejected with ErrTokenNotStructured; every
// other validation failure (expired, wrong issuer, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrUnstructuredClaims) {
			return models.Token{}, ErrTokenNotStructured
		}

		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
