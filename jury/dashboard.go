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

// Dashboard computes per-category vote progress for one jury
type Dashboard struct {
	participants ParticipantSource
	votes        store.VoteStore
	categories   []models.Category
}

func NewDashboard(participants ParticipantSource, votes store.VoteStore, categories []models.Category) *Dashboard {
	return &Dashboard{participants: participants, votes: votes, categories: categories}
}

// Execute returns one entry per configured category in configuration order.
// Categories with no participants assigned to the jury are left out.
func (d *Dashboard) Execute(ctx context.Context, juryCode string) ([]models.DashboardCategory, error) {
	code := auth.NormalizeCode(juryCode)

	assigned := d.participants.GetByJuryCode(code)
	myVotes, err := d.votes.GetByJuryCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes: %w", err)
	}

	voted := make(map[string]bool, len(myVotes))
	for _, v := range myVotes {
		voted[v.ParticipantID] = true
	}

	result := []models.DashboardCategory{}
	for _, cat := range d.categories {
		total, done := 0, 0
		for _, p := range assigned {
			if p.Category != cat.ID {
				continue
			}
			total++
			if voted[p.ID] {
				done++
			}
		}

		if total == 0 {
			continue
		}

		result = append(result, models.DashboardCategory{
			Category:          cat,
			TotalParticipants: total,
			VotedParticipants: done,
			Progress:          progress(done, total),
		})
	}

	return result, nil
}

func progress(voted, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(voted) / float64(total) * 100
}
