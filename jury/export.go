// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jury

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danielhkuo/parade-jury/auth"
	"github.com/danielhkuo/parade-jury/models"
	"github.com/danielhkuo/parade-jury/store"
)

// ResetConfirmation must be supplied verbatim before every vote is cleared
const ResetConfirmation = "RESET"

// ExportVotes reads submitted votes for hand-off and resets the store
type ExportVotes struct {
	votes store.VoteStore
}

func NewExportVotes(votes store.VoteStore) *ExportVotes {
	return &ExportVotes{votes: votes}
}

// Execute returns every vote for ADMIN and the jury's own votes otherwise
func (e *ExportVotes) Execute(ctx context.Context, juryCode string) ([]models.Vote, error) {
	code := auth.NormalizeCode(juryCode)

	var (
		votes []models.Vote
		err   error
	)
	if auth.IsAdmin(code) {
		votes, err = e.votes.GetAll(ctx)
	} else {
		votes, err = e.votes.GetByJuryCode(ctx, code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to export votes: %w", err)
	}
	return votes, nil
}

// Clear deletes every jury's votes, not only the caller's. It cannot be undone.
func (e *ExportVotes) Clear(ctx context.Context) error {
	if err := e.votes.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear votes: %w", err)
	}
	return nil
}

// MarshalExport renders votes as the indented JSON array jurors copy out
func MarshalExport(votes []models.Vote) ([]byte, error) {
	if votes == nil {
		votes = []models.Vote{}
	}
	return json.MarshalIndent(votes, "", "  ")
}
