package storefront

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"

	"myroom/internal/events"
	searcherrors "myroom/internal/search/errors"
	"myroom/internal/search/service"
	apperrors "myroom/pkg/errors"
	httputil "myroom/pkg/http"
	"myroom/pkg/logger"
	"myroom/pkg/model"
	"myroom/pkg/sanitizer"
)

const CodeStaleResponse = "STALE_RESPONSE"

// SearchHandler proxies hotel searches. When the request names the location
// suggestion it came from (location_id and friends), a successful search is
// remembered in the visitor's recent searches.
type SearchHandler struct {
	search    service.SearchService
	sessions  *Sessions
	publisher events.Publisher
	responder
}

func NewSearchHandler(search service.SearchService, sessions *Sessions, publisher events.Publisher, log *logger.Logger) *SearchHandler {
	return &SearchHandler{
		search:    search,
		sessions:  sessions,
		publisher: publisher,
		responder: responder{log: log},
	}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitor := h.sessions.Open(w, r)
	query := r.URL.Query()

	params, err := service.ParseQuery(query)
	if err != nil {
		h.fail(w, r, "Search", err)
		return
	}

	resp, err := h.search.SearchLatest(r.Context(), visitor.ID, &params)
	if err != nil {
		if errors.Is(err, searcherrors.ErrStaleResponse) {
			err = apperrors.New(CodeStaleResponse, "A newer search replaced this one", http.StatusConflict)
		}
		h.fail(w, r, "Search", err)
		return
	}

	if recent, ok := recentSearchFrom(query, &params); ok {
		ctx := r.Context()
		err := visitor.RecentSearches(ctx).Add(ctx, recent)
		visitor.observe("recent_searches", err)
		if err == nil {
			h.publisher.SearchRecorded(ctx, visitor.ID, recent)
		}
	}

	h.success(w, "Search", resp)
}

func (h *SearchHandler) RecentSearches(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitor := h.sessions.Open(w, r)
	h.success(w, "RecentSearches", visitor.RecentSearches(r.Context()).Entries())
}

func (h *SearchHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitor := h.sessions.Open(w, r)
	ctx := r.Context()

	err := visitor.RecentSearches(ctx).Clear(ctx)
	visitor.observe("recent_searches", err)
	if err != nil {
		h.fail(w, r, "ClearRecentSearches", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *SearchHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/search", h.Search)
	router.GET("/api/history/searches", h.RecentSearches)
	router.DELETE("/api/history/searches", h.ClearRecentSearches)
}

// recentSearchFrom rebuilds the location suggestion the visitor picked. The
// search parameters have already been normalised by the search service.
func recentSearchFrom(q url.Values, p *model.SearchParameters) (model.RecentSearch, bool) {
	id := strings.TrimSpace(q.Get("location_id"))
	if id == "" {
		return model.RecentSearch{}, false
	}

	name := sanitizer.NormalizeText(q.Get("location_name"))
	if name == "" {
		name = firstNonEmpty(p.Name, p.Location)
	}

	suggestion := model.LocationSuggestion{
		ID:           id,
		Name:         name,
		FullLocation: sanitizer.NormalizeText(q.Get("full_location")),
		Type:         suggestionType(q.Get("location_type"), p),
		ProvinceID:   p.ProvinceID,
		SoumID:       p.SoumID,
		DistrictID:   p.District,
		NameID:       p.NameID,
	}

	return model.RecentSearch{
		Location: suggestion,
		CheckIn:  p.CheckIn,
		CheckOut: p.CheckOut,
		Adults:   p.Adults,
		Children: p.Children,
		Rooms:    p.Rooms,
	}, true
}

// suggestionType trusts a known explicit type and otherwise infers it from
// the location mode the search used.
func suggestionType(explicit string, p *model.SearchParameters) string {
	switch explicit {
	case model.SuggestionProvince, model.SuggestionSoum, model.SuggestionDistrict,
		model.SuggestionHotel, model.SuggestionLocation:
		return explicit
	}

	switch {
	case p.NameID != nil || p.Name != "":
		return model.SuggestionHotel
	case p.District != nil:
		return model.SuggestionDistrict
	case p.SoumID != nil:
		return model.SuggestionSoum
	case p.ProvinceID != nil:
		return model.SuggestionProvince
	default:
		return model.SuggestionLocation
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
