package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByStatus(t *testing.T) {
	m := New()
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/a", "/b", "/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "200")); got != 2 {
		t.Errorf("200 count = %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "404")); got != 1 {
		t.Errorf("404 count = %v", got)
	}
}

func TestObservers(t *testing.T) {
	m := New()

	m.ObserveUpstream("search_hotels", 200, 30*time.Millisecond)
	m.ObserveUpstream("search_hotels", 0, time.Second)
	m.ObservePublish("history.hotel_viewed", nil, time.Millisecond)
	m.ObservePublish("history.hotel_viewed", errors.New("down"), time.Millisecond)
	m.ObserveHistoryWrite("viewed_hotels", nil)

	if got := testutil.ToFloat64(m.upstreamRequests.WithLabelValues("search_hotels", "0")); got != 1 {
		t.Errorf("network failures = %v", got)
	}
	if got := testutil.ToFloat64(m.eventsPublished.WithLabelValues("history.hotel_viewed", "error")); got != 1 {
		t.Errorf("publish errors = %v", got)
	}
	if got := testutil.ToFloat64(m.historyWrites.WithLabelValues("viewed_hotels", "ok")); got != 1 {
		t.Errorf("history writes = %v", got)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveUpstream("get_hotel", 404, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{"myroom_upstream_requests_total", `operation="get_hotel"`, "go_goroutines"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
