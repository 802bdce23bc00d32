package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"myroom/internal/history"
	"myroom/pkg/kvstore"
	"myroom/pkg/logger"
)

const SessionCookie = "myroom_session"

// HistoryObserver is told about every visitor history mutation.
type HistoryObserver interface {
	ObserveHistoryWrite(list string, err error)
}

// Sessions hands out the per-visitor history stores. Each visitor is
// identified by a random id kept in a cookie, and their lists live under
// that id's prefix in the shared key-value store.
type Sessions struct {
	kv                     kvstore.Store
	log                    *logger.Logger
	ttl                    time.Duration
	viewedHotelsCapacity   int
	recentSearchesCapacity int
	secureCookie           bool
	observer               HistoryObserver
}

type SessionsConfig struct {
	TTL                    time.Duration
	ViewedHotelsCapacity   int
	RecentSearchesCapacity int
	SecureCookie           bool
}

func NewSessions(kv kvstore.Store, log *logger.Logger, cfg SessionsConfig) *Sessions {
	return &Sessions{
		kv:                     kv,
		log:                    log,
		ttl:                    cfg.TTL,
		viewedHotelsCapacity:   cfg.ViewedHotelsCapacity,
		recentSearchesCapacity: cfg.RecentSearchesCapacity,
		secureCookie:           cfg.SecureCookie,
	}
}

func (s *Sessions) SetObserver(o HistoryObserver) {
	s.observer = o
}

// Visitor is one session's view of the history stores. The stores are
// loaded lazily by the accessor methods.
type Visitor struct {
	ID string

	sessions *Sessions
	kv       kvstore.Store
}

// Open returns the visitor behind r, issuing a new session cookie on w when
// the request carries none or an invalid one.
func (s *Sessions) Open(w http.ResponseWriter, r *http.Request) *Visitor {
	id, ok := sessionID(r)
	if !ok {
		id = uuid.NewString()
		s.log.Debug("New visitor session", "session_id", id)
	}
	s.setCookie(w, id)

	return &Visitor{
		ID:       id,
		sessions: s,
		kv:       kvstore.Scoped(s.kv, kvstore.SessionPrefix(id)),
	}
}

func sessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// setCookie refreshes the expiry on every request so active visitors keep
// their history.
func (s *Sessions) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (v *Visitor) ViewedHotels(ctx context.Context) *history.ViewedHotels {
	store := history.NewViewedHotels(v.kv, v.sessions.log, v.sessions.viewedHotelsCapacity)
	store.Load(ctx)
	return store
}

func (v *Visitor) RecentSearches(ctx context.Context) *history.RecentSearches {
	store := history.NewRecentSearches(v.kv, v.sessions.log, v.sessions.recentSearchesCapacity)
	store.Load(ctx)
	return store
}

func (v *Visitor) Wishlist(ctx context.Context) *history.Wishlist {
	w := history.NewWishlist(v.kv, v.sessions.log)
	w.Load(ctx)
	return w
}

func (v *Visitor) observe(list string, err error) {
	if v.sessions.observer != nil {
		v.sessions.observer.ObserveHistoryWrite(list, err)
	}
}
