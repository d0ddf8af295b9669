package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/go-chi/chi/v5"
)

// seasons holds the canned payloads of the demo seasons resource.
var seasons = map[string]models.Season{
	"winter": {
		Details:     "Winter is coming!",
		Temperature: "cold",
		Conditions:  "snowy",
	},
	"spring": {
		Details:     "Flowers are blooming!",
		Temperature: "moderate",
		Conditions:  "raining",
	},
	"summer": {
		Details:     "Summer is here!",
		Temperature: "hot",
		Conditions:  "sunny",
	},
	"autumn": {
		Details:     "Leaves are falling!",
		Temperature: "moderate",
		Conditions:  "windy",
	},
}

func (h *Handler) seasonsRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.seasonsUsage)
	router.Get("/{season}", h.getSeason)

	return router
}

func (h *Handler) seasonsUsage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Type the seasons in the url to get the season details"))
}

func (h *Handler) getSeason(w http.ResponseWriter, r *http.Request) {
	season, ok := seasons[chi.URLParam(r, "season")]
	if !ok {
		// the explicit nil body serializes as "data": null
		errorEnvelope(http.StatusNotFound, MsgInvalidSeason).
			SetBody(nil).
			Send(w)
		return
	}

	NewEnvelope().
		SetBody(season).
		Send(w)
}
