// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jury

import (
	"context"
	"fmt"

	"github.com/danielhkuo/parade-jury/auth"
	"github.com/danielhkuo/parade-jury/models"
	"github.com/danielhkuo/parade-jury/store"
)

// CategoryBrowser lists a jury's participants in one category with their vote status
type CategoryBrowser struct {
	participants ParticipantSource
	votes        store.VoteStore
}

func NewCategoryBrowser(participants ParticipantSource, votes store.VoteStore) *CategoryBrowser {
	return &CategoryBrowser{participants: participants, votes: votes}
}

// Execute returns participants in catalog order. Vote is nil where the
// jury has not scored the participant.
func (b *CategoryBrowser) Execute(ctx context.Context, juryCode, categoryID string) ([]models.ParticipantWithVote, error) {
	code := auth.NormalizeCode(juryCode)

	myVotes, err := b.votes.GetByJuryCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes: %w", err)
	}

	byParticipant := make(map[string]models.Vote, len(myVotes))
	for _, v := range myVotes {
		byParticipant[v.ParticipantID] = v
	}

	result := []models.ParticipantWithVote{}
	for _, p := range b.participants.GetByJuryCode(code) {
		if p.Category != categoryID {
			continue
		}

		item := models.ParticipantWithVote{Participant: p}
		if v, ok := byParticipant[p.ID]; ok {
			item.Vote = &v
		}
		result = append(result, item)
	}

	return result, nil
}

// VoteLookup returns the jury's own vote for one participant
type VoteLookup struct {
	authz Authorizer
	votes store.VoteStore
}

func NewVoteLookup(authz Authorizer, votes store.VoteStore) *VoteLookup {
	return &VoteLookup{authz: authz, votes: votes}
}

// Execute is absent when the participant is not assigned to the jury, has
// no vote, or was last scored by another jury.
func (l *VoteLookup) Execute(ctx context.Context, juryCode, participantID string) (models.Vote, bool, error) {
	code := auth.NormalizeCode(juryCode)
	if !l.authz.IsAssigned(code, participantID) {
		return models.Vote{}, false, nil
	}

	vote, ok, err := l.votes.GetVote(ctx, participantID, code)
	if err != nil {
		return models.Vote{}, false, fmt.Errorf("failed to load vote: %w", err)
	}
	return vote, ok, nil
}
