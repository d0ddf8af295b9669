package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	result := h.services.UserService.GetAllUsers(ctx)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetBody(result.Value()).
			Send(w)
	default:
		log.Err(result.Reason()).Msg("listing users failed")
		errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
	}
}

func (h *Handler) getUserDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		errorEnvelope(http.StatusUnauthorized, MsgUnauthorized).Send(w)
		return
	}

	userID := chi.URLParam(r, "id")

	result := h.services.UserService.GetUserDetails(ctx, userID, claims)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetBody(result.Value()).
			Send(w)
	case service.KindAbsent:
		errorEnvelope(http.StatusNotFound, MsgUserNotFound).Send(w)
	default:
		switch {
		case errors.Is(result.Reason(), service.ErrNotResourceOwner):
			log.Debug().Str("id", userID).Str("caller", claims.UserID).Msg("user details request denied")
			errorEnvelope(http.StatusUnauthorized, MsgUnauthorized).Send(w)
		default:
			log.Err(result.Reason()).Str("id", userID).Msg("unexpected error occurred during user lookup")
			errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
		}
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(ctx)
	if !ok {
		errorEnvelope(http.StatusUnauthorized, MsgUnauthorized).Send(w)
		return
	}

	userID := chi.URLParam(r, "id")

	result := h.services.UserService.DeleteUser(ctx, userID, claims)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetMessage(MsgUserDeleted).
			SetBody(result.Value()).
			Send(w)
	case service.KindAbsent:
		errorEnvelope(http.StatusNotFound, MsgUserNotFound).Send(w)
	default:
		switch {
		case errors.Is(result.Reason(), service.ErrNotResourceOwner):
			log.Debug().Str("id", userID).Str("caller", claims.UserID).Msg("user deletion request denied")
			errorEnvelope(http.StatusUnauthorized, MsgUnauthorized).Send(w)
		default:
			log.Err(result.Reason()).Str("id", userID).Msg("unexpected error occurred during user deletion")
			errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
		}
	}
}
