package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handlerFn http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	handlerFn(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

const registerBody = `{
	"firstName": "John",
	"lastName":  "Smith",
	"email":     "john.smith@email.com",
	"password":  "str0ng-pass"
}`

func TestRegister_Success(t *testing.T) {
	registered := models.User{
		ID:        "7d5edf5a-1111-4f3a-9c3f-000000000001",
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john.smith@email.com",
	}

	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			registerFn: func(_ context.Context, user models.User, password string) service.Result[models.User] {
				assert.Equal(t, "john.smith@email.com", user.Email)
				assert.Equal(t, "str0ng-pass", password)
				return service.Value(registered)
			},
		},
	})

	rr := postJSON(t, h.register, "/api/auth/register", registerBody)

	require.Equal(t, http.StatusCreated, rr.Code)

	body := decodeBody(t, rr)
	assert.JSONEq(t, `"success"`, string(body["status"]))
	assert.JSONEq(t, `"User created successfully"`, string(body["message"]))
	assert.NotContains(t, string(body["data"]), "password", "hash must never be serialized")

	var data models.User
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.Equal(t, registered.ID, data.ID)
	assert.Equal(t, registered.Email, data.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			registerFn: func(_ context.Context, _ models.User, _ string) service.Result[models.User] {
				return service.Failure[models.User](service.ErrEmailTaken)
			},
		},
	})

	rr := postJSON(t, h.register, "/api/auth/register", registerBody)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"User already exists"}`, rr.Body.String())
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			registerFn: func(_ context.Context, _ models.User, _ string) service.Result[models.User] {
				t.Fatal("Register should not be called")
				return service.Result[models.User]{}
			},
		},
	})

	rr := postJSON(t, h.register, "/api/auth/register", `{"firstName": `)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_ValidationErrors(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			registerFn: func(_ context.Context, _ models.User, _ string) service.Result[models.User] {
				t.Fatal("Register should not be called")
				return service.Result[models.User]{}
			},
		},
	})

	rr := postJSON(t, h.register, "/api/auth/register", `{"firstName":"John","lastName":"Smith","email":"not-an-email","password":"short"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := decodeBody(t, rr)
	assert.JSONEq(t, `"error"`, string(body["status"]))

	var fieldErrors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body["data"], &fieldErrors))
	require.Len(t, fieldErrors, 2)

	fields := []string{fieldErrors[0].Field, fieldErrors[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestLogin_Success(t *testing.T) {
	session := models.Session{
		Token: "signed.jwt.token",
		User: models.User{
			ID:    "7d5edf5a-1111-4f3a-9c3f-000000000001",
			Email: "john.smith@email.com",
		},
	}

	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, email, password string) service.Result[models.Session] {
				assert.Equal(t, "john.smith@email.com", email)
				assert.Equal(t, "str0ng-pass", password)
				return service.Value(session)
			},
		},
	})

	rr := postJSON(t, h.login, "/api/auth/login", `{"email":"john.smith@email.com","password":"str0ng-pass"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.JSONEq(t, `"success"`, string(body["status"]))
	assert.NotContains(t, body, "message")

	var data models.Session
	require.NoError(t, json.Unmarshal(body["data"], &data))
	assert.Equal(t, session.Token, data.Token)
	assert.Equal(t, session.User.ID, data.User.ID)
}

// A nonexistent account and a wrong password must be indistinguishable:
// both answer 401 "Invalid credentials", never 404 or 500.
func TestLogin_FailureReasonsUnifiedAs401(t *testing.T) {
	reasons := []error{
		service.ErrUserNotFound,
		service.ErrWrongPassword,
	}

	for _, reason := range reasons {
		t.Run(reason.Error(), func(t *testing.T) {
			h := newTestHandler(&service.Services{
				AuthService: &mockAuthService{
					loginFn: func(_ context.Context, _, _ string) service.Result[models.Session] {
						return service.Failure[models.Session](reason)
					},
				},
			})

			rr := postJSON(t, h.login, "/api/auth/login", `{"email":"who@email.com","password":"whatever1"}`)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"status":"error","message":"Invalid credentials"}`, rr.Body.String())
		})
	}
}

func TestLogin_UnexpectedFailureIs500(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, _, _ string) service.Result[models.Session] {
				return service.Failure[models.Session](service.ErrTokenCreationFailed)
			},
		},
	})

	rr := postJSON(t, h.login, "/api/auth/login", `{"email":"who@email.com","password":"whatever1"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	body := decodeBody(t, rr)
	assert.NotContains(t, string(body["message"]), "token", "internal detail must not leak")
}
