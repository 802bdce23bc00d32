package storefront

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"myroom/internal/bookings/service"
	httputil "myroom/pkg/http"
	"myroom/pkg/logger"
	"myroom/pkg/middleware"
	"myroom/pkg/model"
)

type QuoteRequest struct {
	CheckIn  string                   `json:"check_in"`
	CheckOut string                   `json:"check_out"`
	Rooms    []model.BookingRoomDraft `json:"rooms"`
}

type BookingHandler struct {
	bookings service.BookingService
	limiter  *middleware.RateLimiter
	responder
}

// NewBookingHandler builds the booking endpoints. When limiter is not nil it
// throttles every booking mutation per visitor.
func NewBookingHandler(bookings service.BookingService, limiter *middleware.RateLimiter, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookings:  bookings,
		limiter:   limiter,
		responder: responder{log: log},
	}
}

func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	query := model.AvailabilityQuery{
		CheckIn:  q.Get("check_in"),
		CheckOut: q.Get("check_out"),
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"hotel_id", &query.HotelID},
		{"room_category_id", &query.RoomCategoryID},
		{"room_type_id", &query.RoomTypeID},
	} {
		v, err := httputil.PositiveInt(f.name, q.Get(f.name))
		if err != nil {
			h.fail(w, r, "Availability", err)
			return
		}
		*f.dst = v
	}

	resp, err := h.bookings.Availability(r.Context(), query)
	if err != nil {
		h.fail(w, r, "Availability", err)
		return
	}
	h.success(w, "Availability", resp)
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req QuoteRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "Quote", err)
		return
	}

	quote, err := h.bookings.Quote(req.CheckIn, req.CheckOut, req.Rooms)
	if err != nil {
		h.fail(w, r, "Quote", err)
		return
	}
	h.success(w, "Quote", quote)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var draft model.BookingDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, "CreateBooking", err)
		return
	}

	resp, err := h.bookings.Create(r.Context(), &draft)
	if err != nil {
		h.fail(w, r, "CreateBooking", err)
		return
	}
	h.created(w, "CreateBooking", resp)
}

func (h *BookingHandler) Check(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	details, err := h.bookings.Check(r.Context(), q.Get("booking_code"), q.Get("pin_code"))
	if err != nil {
		h.fail(w, r, "CheckBooking", err)
		return
	}
	h.success(w, "CheckBooking", details)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CancelBookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "CancelBooking", err)
		return
	}

	resp, err := h.bookings.Cancel(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "CancelBooking", err)
		return
	}
	h.success(w, "CancelBooking", resp)
}

func (h *BookingHandler) ChangeDates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ChangeDatesRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "ChangeDates", err)
		return
	}

	resp, err := h.bookings.ChangeDates(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "ChangeDates", err)
		return
	}
	h.success(w, "ChangeDates", resp)
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ConfirmBookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, "ConfirmBooking", err)
		return
	}

	resp, err := h.bookings.Confirm(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "ConfirmBooking", err)
		return
	}
	h.success(w, "ConfirmBooking", resp)
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/availability", h.Availability)
	router.POST("/api/bookings/quote", h.Quote)
	router.POST("/api/bookings", h.limited(h.Create))
	router.GET("/api/bookings/check", h.Check)
	router.POST("/api/bookings/cancel", h.limited(h.Cancel))
	router.POST("/api/bookings/change-dates", h.limited(h.ChangeDates))
	router.POST("/api/bookings/confirm", h.limited(h.Confirm))
}

func (h *BookingHandler) limited(next httprouter.Handle) httprouter.Handle {
	if h.limiter == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		middleware.RateLimit(h.limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next(w, r, ps)
		})).ServeHTTP(w, r)
	}
}
