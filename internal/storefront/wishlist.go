package storefront

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "myroom/pkg/http"
	"myroom/pkg/logger"
)

type WishlistToggleResponse struct {
	HotelID string `json:"hotel_id"`
	Added   bool   `json:"added"`
}

type WishlistHandler struct {
	sessions *Sessions
	responder
}

func NewWishlistHandler(sessions *Sessions, log *logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		sessions:  sessions,
		responder: responder{log: log},
	}
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitor := h.sessions.Open(w, r)
	h.success(w, "ListWishlist", visitor.Wishlist(r.Context()).IDs())
}

func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, err := httputil.PositiveInt("id", id); err != nil {
		h.fail(w, r, "ToggleWishlist", err)
		return
	}

	visitor := h.sessions.Open(w, r)
	ctx := r.Context()

	added, err := visitor.Wishlist(ctx).Toggle(ctx, id)
	visitor.observe("wishlist", err)
	if err != nil {
		h.fail(w, r, "ToggleWishlist", err)
		return
	}

	h.success(w, "ToggleWishlist", WishlistToggleResponse{HotelID: id, Added: added})
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitor := h.sessions.Open(w, r)
	ctx := r.Context()

	err := visitor.Wishlist(ctx).Clear(ctx)
	visitor.observe("wishlist", err)
	if err != nil {
		h.fail(w, r, "ClearWishlist", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *WishlistHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/wishlist", h.List)
	router.POST("/api/wishlist/:id", h.Toggle)
	router.DELETE("/api/wishlist", h.Clear)
}
