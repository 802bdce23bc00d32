package service

import (
	"context"
	"sync"

	searcherrors "myroom/internal/search/errors"
	"myroom/internal/search/validator"
	"myroom/pkg/client"
	"myroom/pkg/logger"
	"myroom/pkg/model"
	"myroom/pkg/sanitizer"
)

// Searcher is the part of the hotel API client the search service needs.
type Searcher interface {
	SearchHotels(ctx context.Context, rawQuery string) (*model.SearchResponse, error)
}

type SearchService interface {
	Search(ctx context.Context, params *model.SearchParameters) (*model.SearchResponse, error)
	SearchLatest(ctx context.Context, sessionID string, params *model.SearchParameters) (*model.SearchResponse, error)
}

type searchService struct {
	searcher  Searcher
	validator *validator.SearchValidator
	log       *logger.Logger

	mu         sync.Mutex
	sequencers map[string]*Sequencer
}

func NewSearchService(searcher Searcher, validator *validator.SearchValidator, log *logger.Logger) SearchService {
	return &searchService{
		searcher:   searcher,
		validator:  validator,
		log:        log,
		sequencers: make(map[string]*Sequencer),
	}
}

func (s *searchService) Search(ctx context.Context, params *model.SearchParameters) (*model.SearchResponse, error) {
	s.sanitize(params)
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}

	query := BuildQuery(params)
	resp, err := s.searcher.SearchHotels(ctx, query)
	if err != nil {
		s.log.Warn("Hotel search failed", "query", query, "error", err)
		return nil, client.ToAppError(err)
	}

	s.log.Debug("Hotel search completed", "query", query, "count", resp.Count)
	return resp, nil
}

// SearchLatest runs Search and drops the result when a newer search for the
// same session was started in the meantime.
func (s *searchService) SearchLatest(ctx context.Context, sessionID string, params *model.SearchParameters) (*model.SearchResponse, error) {
	seq, ticket := s.begin(sessionID)

	resp, err := s.Search(ctx, params)
	if !s.finish(sessionID, seq, ticket) {
		s.log.Debug("Discarding superseded search", "session_id", sessionID, "ticket", ticket)
		return nil, searcherrors.ErrStaleResponse
	}
	return resp, err
}

func (s *searchService) begin(sessionID string) (*Sequencer, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := s.sequencers[sessionID]
	if !ok {
		seq = &Sequencer{}
		s.sequencers[sessionID] = seq
	}
	return seq, seq.Next()
}

// finish reports whether ticket is still the latest one. The sequencer of an
// idle session is dropped once its last search completes.
func (s *searchService) finish(sessionID string, seq *Sequencer, ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !seq.IsLatest(ticket) {
		return false
	}
	if s.sequencers[sessionID] == seq {
		delete(s.sequencers, sessionID)
	}
	return true
}

func (s *searchService) sanitize(params *model.SearchParameters) {
	params.Location = sanitizer.NormalizeText(params.Location)
	params.Name = sanitizer.NormalizeText(params.Name)
	params.AccType = sanitizer.NormalizeText(params.AccType)
}
