package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/validators"
	"github.com/MKhiriev/go-blog-platform/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req validators.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(MsgInvalidJSON)
		errorEnvelope(http.StatusBadRequest, MsgInvalidJSON).Send(w)
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		h.sendValidationErrors(w, http.StatusBadRequest, fieldErrors)
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	result := h.services.AuthService.Register(ctx, user, req.Password)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetHTTPCode(http.StatusCreated).
			SetMessage(MsgUserCreated).
			SetBody(result.Value()).
			Send(w)
	case service.KindFailure:
		switch {
		case errors.Is(result.Reason(), service.ErrEmailTaken):
			log.Debug().Str("email", req.Email).Msg("registration with taken email")
			errorEnvelope(http.StatusBadRequest, MsgUserAlreadyExists).Send(w)
		case errors.Is(result.Reason(), service.ErrInvalidDataProvided):
			errorEnvelope(http.StatusBadRequest, service.ErrInvalidDataProvided.Error()).Send(w)
		default:
			log.Err(result.Reason()).Msg("unexpected error occurred during user registration")
			errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
		}
	default:
		// registration never reports absence
		errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req validators.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(MsgInvalidJSON)
		errorEnvelope(http.StatusBadRequest, MsgInvalidJSON).Send(w)
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		h.sendValidationErrors(w, http.StatusBadRequest, fieldErrors)
		return
	}

	result := h.services.AuthService.Login(ctx, req.Email, req.Password)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetBody(result.Value()).
			Send(w)
	case service.KindFailure:
		switch {
		// an unknown email and a wrong password are indistinguishable to the caller
		case errors.Is(result.Reason(), service.ErrUserNotFound),
			errors.Is(result.Reason(), service.ErrWrongPassword),
			errors.Is(result.Reason(), service.ErrInvalidDataProvided):
			log.Debug().Str("email", req.Email).Msg("failed login attempt")
			errorEnvelope(http.StatusUnauthorized, MsgInvalidCredentials).Send(w)
		default:
			log.Err(result.Reason()).Msg("unexpected error occurred during user login")
			errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
		}
	default:
		errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
	}
}

// sendValidationErrors writes an error envelope carrying the field-level
// violation list as its body.
func (h *Handler) sendValidationErrors(w http.ResponseWriter, code int, fieldErrors []validators.FieldError) {
	NewEnvelope().
		SetHTTPCode(code).
		SetStatus(statusError).
		SetBody(fieldErrors).
		Send(w)
}
