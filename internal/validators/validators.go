// Package validators declares the inbound request shapes of the HTTP API
// and checks them against their declared constraints before any request
// reaches a service.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=30"`
	LastName  string `json:"lastName" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreatePostRequest is the payload of POST /api/posts. Column widths cap
// the title and description lengths.
type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required,max=25"`
	Description string   `json:"description" validate:"required,max=50"`
	Text        string   `json:"text" validate:"required"`
	AuthorID    string   `json:"authorId" validate:"required,uuid4"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required"`
}

// UpdatePostRequest is the payload of PUT /api/posts/{id}. Every field is
// optional; absent fields leave the stored value untouched.
type UpdatePostRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=25"`
	Description *string   `json:"description" validate:"omitempty,max=50"`
	Text        *string   `json:"text" validate:"omitempty"`
	Tags        *[]string `json:"tags" validate:"omitempty,dive,required"`
}

// BirdRequest is the payload of POST /api/birds.
type BirdRequest struct {
	Name  string   `json:"name" validate:"required"`
	Color []string `json:"color" validate:"required,min=1,dive,required"`
}

// UpdateBirdRequest is the payload of PUT /api/birds/{birdId}. Both fields
// are optional but a present color list may not be empty.
type UpdateBirdRequest struct {
	Name  string   `json:"name" validate:"omitempty"`
	Color []string `json:"color" validate:"omitempty,min=1,dive,required"`
}

// FieldError describes a single constraint violation in caller-facing terms.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator checks request structs against their declared constraints.
type Validator struct {
	validate *validator.Validate
}

// New constructs a Validator using json tag names in error output.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Check validates req and translates every violation into a FieldError.
// A nil slice means the request is valid.
func (v *Validator) Check(req any) []FieldError {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "", Message: "invalid request payload"}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldName(fe),
			Message: describe(fe),
		})
	}

	return fieldErrors
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return fe.StructField()
	}

	return name
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid e-mail address"
	case "uuid4":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return fmt.Sprintf("failed the %q constraint", fe.Tag())
	}
}
