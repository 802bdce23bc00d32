package storefront

import (
	"math"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "myroom/pkg/errors"
	"myroom/pkg/geo"
	"myroom/pkg/logger"
)

type DistanceResponse struct {
	From       geo.Coordinates `json:"from"`
	To         geo.Coordinates `json:"to"`
	DistanceKm float64         `json:"distance_km"`
	MapsURL    string          `json:"maps_url"`
}

type GeoHandler struct {
	responder
}

func NewGeoHandler(log *logger.Logger) *GeoHandler {
	return &GeoHandler{responder: responder{log: log}}
}

// Distance answers GET /api/geo/distance?from=lat,lng&to=lat,lng. The
// distance is rounded to metres.
func (h *GeoHandler) Distance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	from, err := geo.ParseCoordinates(q.Get("from"))
	if err != nil {
		h.fail(w, r, "Distance", apperrors.InvalidInput("from: "+err.Error()))
		return
	}
	to, err := geo.ParseCoordinates(q.Get("to"))
	if err != nil {
		h.fail(w, r, "Distance", apperrors.InvalidInput("to: "+err.Error()))
		return
	}

	km := geo.HaversineDistanceKm(*from, *to)
	h.success(w, "Distance", DistanceResponse{
		From:       *from,
		To:         *to,
		DistanceKm: math.Round(km*1000) / 1000,
		MapsURL:    geo.MapsURL(*to),
	})
}

func (h *GeoHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/geo/distance", h.Distance)
}
