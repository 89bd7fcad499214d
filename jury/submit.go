// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jury

import (
	"context"
	"fmt"
	"math"

	"github.com/danielhkuo/parade-jury/auth"
	"github.com/danielhkuo/parade-jury/models"
	"github.com/danielhkuo/parade-jury/store"
)

// SubmitVote validates a vote and writes it to the store. A rejected vote
// leaves the store untouched.
type SubmitVote struct {
	authz        Authorizer
	participants ParticipantSource
	votes        store.VoteStore
}

func NewSubmitVote(authz Authorizer, participants ParticipantSource, votes store.VoteStore) *SubmitVote {
	return &SubmitVote{authz: authz, participants: participants, votes: votes}
}

// Execute stores the vote under its participant, replacing any earlier vote.
// The caller computes Total and Timestamp; both are checked, not derived.
func (s *SubmitVote) Execute(ctx context.Context, vote models.Vote) error {
	vote.JuryCode = auth.NormalizeCode(vote.JuryCode)

	if err := s.validate(vote); err != nil {
		return err
	}

	if err := s.votes.Save(ctx, vote); err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (s *SubmitVote) validate(vote models.Vote) error {
	if vote.ParticipantID == "" {
		return invalid("participantId", "is required")
	}
	if _, ok := s.participants.GetByID(vote.ParticipantID); !ok {
		return invalid("participantId", "unknown participant %q", vote.ParticipantID)
	}
	if !s.authz.Login(vote.JuryCode) {
		return invalid("juryCode", "unknown jury code")
	}
	if !s.authz.IsAssigned(vote.JuryCode, vote.ParticipantID) {
		return invalid("participantId", "participant %q is not assigned to this jury", vote.ParticipantID)
	}
	if err := checkScore("originality", vote.Originality); err != nil {
		return err
	}
	if err := checkScore("interaction", vote.Interaction); err != nil {
		return err
	}
	if vote.Total != vote.Originality+vote.Interaction {
		return invalid("total", "must equal originality + interaction (%v), got %v", vote.Originality+vote.Interaction, vote.Total)
	}
	if vote.Timestamp.IsZero() {
		return invalid("timestamp", "is required")
	}
	return nil
}

func checkScore(field string, v float64) error {
	if math.IsNaN(v) || v < models.MinScore || v > models.MaxScore {
		return invalid(field, "must be between %v and %v, got %v", models.MinScore, models.MaxScore, v)
	}
	if math.Mod(v, models.ScoreStep) != 0 {
		return invalid(field, "must be a multiple of %v, got %v", models.ScoreStep, v)
	}
	return nil
}
