package http

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/validators"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/go-chi/chi/v5"
)

// birdsRoutes serves the demo birds resource. Nothing is persisted; the
// endpoints echo validated input or canned data.
func (h *Handler) birdsRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.createBird)
	router.Get("/{birdId}", h.getBird)
	router.Put("/{birdId}", h.updateBird)

	return router
}

func (h *Handler) createBird(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req validators.BirdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(MsgInvalidJSON)
		errorEnvelope(http.StatusBadRequest, MsgInvalidJSON).Send(w)
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		h.sendValidationErrors(w, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	bird := models.Bird{
		ID:    strconv.Itoa(rand.IntN(100)),
		Name:  req.Name,
		Color: req.Color,
	}

	NewEnvelope().
		SetBody(bird).
		Send(w)
}

func (h *Handler) getBird(w http.ResponseWriter, r *http.Request) {
	birdID := chi.URLParam(r, "birdId")

	bird := models.Bird{
		ID:    birdID,
		Name:  "Eagle",
		Color: []string{"brown", "white"},
	}

	NewEnvelope().
		SetBody(bird).
		Send(w)
}

func (h *Handler) updateBird(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req validators.UpdateBirdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(MsgInvalidJSON)
		errorEnvelope(http.StatusBadRequest, MsgInvalidJSON).Send(w)
		return
	}

	if fieldErrors := h.validator.Check(req); fieldErrors != nil {
		h.sendValidationErrors(w, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	bird := models.Bird{
		ID:    chi.URLParam(r, "birdId"),
		Name:  req.Name,
		Color: req.Color,
	}

	NewEnvelope().
		SetBody(bird).
		Send(w)
}
