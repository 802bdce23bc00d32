package storefront

import (
	"context"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"myroom/internal/events"
	"myroom/pkg/client"
	"myroom/pkg/geo"
	httputil "myroom/pkg/http"
	"myroom/pkg/logger"
	"myroom/pkg/model"
)

// HotelFetcher is the part of the hotel API client the detail page needs.
type HotelFetcher interface {
	GetByID(ctx context.Context, id int) (*model.Hotel, error)
}

type HotelDetail struct {
	*model.Hotel
	Coordinates *geo.Coordinates `json:"coordinates,omitempty"`
	InWishlist  bool             `json:"in_wishlist"`
}

type HotelHandler struct {
	hotels    HotelFetcher
	sessions  *Sessions
	publisher events.Publisher
	responder
}

func NewHotelHandler(hotels HotelFetcher, sessions *Sessions, publisher events.Publisher, log *logger.Logger) *HotelHandler {
	return &HotelHandler{
		hotels:    hotels,
		sessions:  sessions,
		publisher: publisher,
		responder: responder{log: log},
	}
}

// GetByID returns the hotel and records it in the visitor's recently viewed
// list. A failed history write does not fail the page.
func (h *HotelHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PositiveInt("id", ps.ByName("id"))
	if err != nil {
		h.fail(w, r, "GetHotel", err)
		return
	}

	visitor := h.sessions.Open(w, r)
	ctx := r.Context()

	hotel, err := h.hotels.GetByID(ctx, id)
	if err != nil {
		h.fail(w, r, "GetHotel", client.ToAppError(err))
		return
	}

	err = visitor.ViewedHotels(ctx).Add(ctx, *hotel)
	visitor.observe("viewed_hotels", err)
	if err == nil {
		h.publisher.HotelViewed(ctx, visitor.ID, *hotel)
	}

	h.success(w, "GetHotel", HotelDetail{
		Hotel:       hotel,
		Coordinates: geo.ExtractCoordinates(hotel.GoogleMap),
		InWishlist:  visitor.Wishlist(ctx).Contains(strconv.Itoa(hotel.PK)),
	})
}

func (h *HotelHandler) ViewedHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitor := h.sessions.Open(w, r)
	h.success(w, "ViewedHotels", visitor.ViewedHotels(r.Context()).Entries())
}

func (h *HotelHandler) RemoveViewedHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	visitor := h.sessions.Open(w, r)
	ctx := r.Context()

	err := visitor.ViewedHotels(ctx).Remove(ctx, ps.ByName("id"))
	visitor.observe("viewed_hotels", err)
	if err != nil {
		h.fail(w, r, "RemoveViewedHotel", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *HotelHandler) ClearViewedHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitor := h.sessions.Open(w, r)
	ctx := r.Context()

	err := visitor.ViewedHotels(ctx).Clear(ctx)
	visitor.observe("viewed_hotels", err)
	if err != nil {
		h.fail(w, r, "ClearViewedHotels", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *HotelHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/hotels/:id", h.GetByID)
	router.GET("/api/history/viewed", h.ViewedHotels)
	router.DELETE("/api/history/viewed", h.ClearViewedHotels)
	router.DELETE("/api/history/viewed/:id", h.RemoveViewedHotel)
}
