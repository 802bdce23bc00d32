package service

import "sync/atomic"

// Sequencer hands out increasing tickets so that only the response to the
// most recent request is delivered.
type Sequencer struct {
	latest atomic.Uint64
}

func (s *Sequencer) Next() uint64 {
	return s.latest.Add(1)
}

func (s *Sequencer) IsLatest(ticket uint64) bool {
	return s.latest.Load() == ticket
}
