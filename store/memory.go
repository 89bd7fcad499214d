// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/parade-jury/models"
)

// MemoryStore keeps votes and juries in process memory. Votes are returned
// in the order participants were first scored.
type MemoryStore struct {
	mu     sync.RWMutex
	votes  map[string]models.Vote
	order  []string
	juries map[string]models.Jury
	jOrder []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		votes:  make(map[string]models.Vote),
		juries: make(map[string]models.Jury),
	}
}

func (s *MemoryStore) Save(ctx context.Context, vote models.Vote) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.votes[vote.ParticipantID]; !exists {
		s.order = append(s.order, vote.ParticipantID)
	}
	s.votes[vote.ParticipantID] = vote
	return nil
}

func (s *MemoryStore) GetAll(ctx context.Context) ([]models.Vote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Vote, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.votes[id])
	}
	return out, nil
}

func (s *MemoryStore) GetByJuryCode(ctx context.Context, juryCode string) ([]models.Vote, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterByJury(all, juryCode), nil
}

func (s *MemoryStore) GetVote(ctx context.Context, participantID, juryCode string) (models.Vote, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Vote{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	vote, ok := s.votes[participantID]
	if !ok || vote.JuryCode != juryCode {
		return models.Vote{}, false, nil
	}
	return vote, true, nil
}

func (s *MemoryStore) ClearAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.votes = make(map[string]models.Vote)
	s.order = nil
	return nil
}

func (s *MemoryStore) SaveJury(ctx context.Context, jury models.Jury) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.juries[jury.ID]; !exists {
		s.jOrder = append(s.jOrder, jury.ID)
	}
	s.juries[jury.ID] = jury
	return nil
}

func (s *MemoryStore) GetAllJuries(ctx context.Context) ([]models.Jury, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Jury, 0, len(s.jOrder))
	for _, id := range s.jOrder {
		out = append(out, s.juries[id])
	}
	return out, nil
}

func (s *MemoryStore) GetJury(ctx context.Context, id string) (models.Jury, error) {
	if err := ctx.Err(); err != nil {
		return models.Jury{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	jury, ok := s.juries[id]
	if !ok {
		return models.Jury{}, ErrNotFound
	}
	return jury, nil
}

func (s *MemoryStore) DeleteJury(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.juries[id]; !ok {
		return ErrNotFound
	}
	delete(s.juries, id)
	for i, jid := range s.jOrder {
		if jid == id {
			s.jOrder = append(s.jOrder[:i], s.jOrder[i+1:]...)
			break
		}
	}
	return nil
}
