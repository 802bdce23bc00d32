package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"

	searcherrors "myroom/internal/search/errors"
	"myroom/internal/search/validator"
	"myroom/pkg/client"
	apperrors "myroom/pkg/errors"
	"myroom/pkg/logger"
	"myroom/pkg/model"
)

type mockSearcher struct {
	searchFunc func(ctx context.Context, rawQuery string) (*model.SearchResponse, error)
}

func (m *mockSearcher) SearchHotels(ctx context.Context, rawQuery string) (*model.SearchResponse, error) {
	return m.searchFunc(ctx, rawQuery)
}

func newService(s Searcher) SearchService {
	log := logger.Discard()
	return NewSearchService(s, validator.NewSearchValidator(log), log)
}

func validParams() *model.SearchParameters {
	return &model.SearchParameters{
		Location: "  Ulaanbaatar   city ",
		CheckIn:  "2025-07-01",
		CheckOut: "2025-07-03",
		Adults:   2,
		Rooms:    1,
		AccType:  model.AccTypeHotel,
	}
}

func TestSearch_SendsNormalizedQuery(t *testing.T) {
	var gotQuery url.Values
	svc := newService(&mockSearcher{searchFunc: func(_ context.Context, rawQuery string) (*model.SearchResponse, error) {
		gotQuery, _ = url.ParseQuery(rawQuery)
		return &model.SearchResponse{Count: 1, Results: []model.Hotel{{PK: 4}}}, nil
	}})

	resp, err := svc.Search(context.Background(), validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("unexpected response %+v", resp)
	}
	if gotQuery.Get("location") != "Ulaanbaatar city" {
		t.Errorf("location = %q", gotQuery.Get("location"))
	}
}

func TestSearch_InvalidParametersNeverReachAPI(t *testing.T) {
	called := false
	svc := newService(&mockSearcher{searchFunc: func(context.Context, string) (*model.SearchResponse, error) {
		called = true
		return &model.SearchResponse{}, nil
	}})

	p := validParams()
	p.NameID = intPtr(3)

	_, err := svc.Search(context.Background(), p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if apperrors.AsAppError(err).Message != searcherrors.MsgNameIDExclusive {
		t.Errorf("unexpected error %v", err)
	}
	if called {
		t.Error("search API must not be called for invalid parameters")
	}
}

func TestSearch_UpstreamErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		apiErr     *client.APIError
		wantStatus int
	}{
		{name: "client error passes through", apiErr: &client.APIError{Status: http.StatusBadRequest, Message: "Invalid dates"}, wantStatus: http.StatusBadRequest},
		{name: "server error becomes bad gateway", apiErr: &client.APIError{Status: http.StatusInternalServerError, Message: "HTTP error: 500"}, wantStatus: http.StatusBadGateway},
		{name: "network failure becomes bad gateway", apiErr: &client.APIError{Message: "connection refused"}, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&mockSearcher{searchFunc: func(context.Context, string) (*model.SearchResponse, error) {
				return nil, tt.apiErr
			}})

			_, err := svc.Search(context.Background(), validParams())
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeUpstream {
				t.Errorf("expected upstream code, got %s", appErr.Code)
			}
			if appErr.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", appErr.StatusCode(), tt.wantStatus)
			}
			if appErr.Message != tt.apiErr.Message {
				t.Errorf("message = %q, want %q", appErr.Message, tt.apiErr.Message)
			}
		})
	}
}

func TestSearchLatest_DropsSupersededResponse(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	svc := newService(&mockSearcher{searchFunc: func(_ context.Context, rawQuery string) (*model.SearchResponse, error) {
		q, _ := url.ParseQuery(rawQuery)
		if q.Get("location") == "first" {
			close(firstStarted)
			<-releaseFirst
			return &model.SearchResponse{Count: 1}, nil
		}
		return &model.SearchResponse{Count: 2}, nil
	}})

	var (
		wg       sync.WaitGroup
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		p := validParams()
		p.Location = "first"
		_, firstErr = svc.SearchLatest(context.Background(), "session-a", p)
	}()

	<-firstStarted
	p := validParams()
	p.Location = "second"
	resp, err := svc.SearchLatest(context.Background(), "session-a", p)
	close(releaseFirst)
	wg.Wait()

	if err != nil || resp.Count != 2 {
		t.Fatalf("latest search: resp=%+v err=%v", resp, err)
	}
	if !errors.Is(firstErr, searcherrors.ErrStaleResponse) {
		t.Errorf("expected stale response for the first search, got %v", firstErr)
	}
}

func TestSearchLatest_SessionsAreIndependent(t *testing.T) {
	svc := newService(&mockSearcher{searchFunc: func(context.Context, string) (*model.SearchResponse, error) {
		return &model.SearchResponse{Count: 3}, nil
	}})

	for _, session := range []string{"a", "b", "a"} {
		resp, err := svc.SearchLatest(context.Background(), session, validParams())
		if err != nil || resp.Count != 3 {
			t.Errorf("session %s: resp=%+v err=%v", session, resp, err)
		}
	}
}

func TestSequencer(t *testing.T) {
	var s Sequencer
	first := s.Next()
	if !s.IsLatest(first) {
		t.Fatal("first ticket should be latest")
	}
	second := s.Next()
	if s.IsLatest(first) || !s.IsLatest(second) {
		t.Errorf("only the second ticket should be latest")
	}
}
