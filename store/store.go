// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/parade-jury/models"
)

var (
	ErrStorage  = errors.New("storage failure")
	ErrNotFound = errors.New("not found")
)

// VoteStore holds at most one vote per participant ID. Save overwrites
// whatever is stored for that participant regardless of which jury wrote it.
// Implementations do not validate votes.
type VoteStore interface {
	Save(ctx context.Context, vote models.Vote) error
	GetAll(ctx context.Context) ([]models.Vote, error)
	GetByJuryCode(ctx context.Context, juryCode string) ([]models.Vote, error)
	// GetVote returns the participant's vote only if it was last written by juryCode
	GetVote(ctx context.Context, participantID, juryCode string) (models.Vote, bool, error)
	ClearAll(ctx context.Context) error
}

// JuryStore persists registered jury panels
type JuryStore interface {
	SaveJury(ctx context.Context, jury models.Jury) error
	GetAllJuries(ctx context.Context) ([]models.Jury, error)
	GetJury(ctx context.Context, id string) (models.Jury, error)
	DeleteJury(ctx context.Context, id string) error
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

func filterByJury(votes []models.Vote, juryCode string) []models.Vote {
	out := []models.Vote{}
	for _, v := range votes {
		if v.JuryCode == juryCode {
			out = append(out, v)
		}
	}
	return out
}
