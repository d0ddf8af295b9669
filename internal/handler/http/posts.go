package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/validators"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	result := h.services.PostService.GetAllPosts(ctx)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetBody(result.Value()).
			Send(w)
	default:
		log.Err(result.Reason()).Msg("listing posts failed")
		errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
	}
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req validators.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(MsgInvalidJSON)
		errorEnvelope(http.StatusBadRequest, MsgInvalidJSON).Send(w)
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		h.sendValidationErrors(w, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	post := models.Post{
		Title:       req.Title,
		Description: req.Description,
		Text:        req.Text,
		Tags:        req.Tags,
		AuthorID:    req.AuthorID,
	}

	result := h.services.PostService.CreatePost(ctx, post)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetHTTPCode(http.StatusCreated).
			SetMessage(MsgPostCreated).
			SetBody(result.Value()).
			Send(w)
	case service.KindFailure:
		switch {
		case errors.Is(result.Reason(), service.ErrAuthorNotFound):
			log.Debug().Str("author_id", req.AuthorID).Msg("post creation with unknown author")
			errorEnvelope(http.StatusNotFound, MsgAuthorNotFound).Send(w)
		case errors.Is(result.Reason(), service.ErrInvalidDataProvided):
			errorEnvelope(http.StatusBadRequest, service.ErrInvalidDataProvided.Error()).Send(w)
		default:
			log.Err(result.Reason()).Msg("unexpected error occurred during post creation")
			errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
		}
	default:
		errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
	}
}

func (h *Handler) getPostDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "id")

	result := h.services.PostService.GetPostDetails(ctx, postID)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetBody(result.Value()).
			Send(w)
	case service.KindAbsent:
		errorEnvelope(http.StatusNotFound, MsgPostNotFound).Send(w)
	default:
		log.Err(result.Reason()).Str("id", postID).Msg("unexpected error occurred during post lookup")
		errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
	}
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req validators.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(MsgInvalidJSON)
		errorEnvelope(http.StatusBadRequest, MsgInvalidJSON).Send(w)
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		h.sendValidationErrors(w, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	postID := chi.URLParam(r, "id")

	update := models.PostUpdate{
		Title:       req.Title,
		Description: req.Description,
		Text:        req.Text,
		Tags:        req.Tags,
	}

	result := h.services.PostService.UpdatePost(ctx, postID, update)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetMessage(MsgPostUpdated).
			SetBody(result.Value()).
			Send(w)
	case service.KindAbsent:
		errorEnvelope(http.StatusNotFound, MsgPostNotFound).Send(w)
	default:
		log.Err(result.Reason()).Str("id", postID).Msg("unexpected error occurred during post update")
		errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
	}
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID := chi.URLParam(r, "id")

	result := h.services.PostService.DeletePost(ctx, postID)
	switch result.Kind() {
	case service.KindValue:
		NewEnvelope().
			SetMessage(MsgPostDeleted).
			SetBody(result.Value()).
			Send(w)
	case service.KindAbsent:
		errorEnvelope(http.StatusNotFound, MsgPostNotFound).Send(w)
	default:
		log.Err(result.Reason()).Str("id", postID).Msg("unexpected error occurred during post deletion")
		errorEnvelope(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).Send(w)
	}
}
