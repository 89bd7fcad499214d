// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jury

import (
	"github.com/danielhkuo/parade-jury/models"
	"github.com/danielhkuo/parade-jury/store"
)

// Authorizer is the access-control contract (see auth.Table)
type Authorizer interface {
	Login(code string) bool
	IsAssigned(code, participantID string) bool
}

// ParticipantSource is the participant catalog contract (see catalog.Catalog)
type ParticipantSource interface {
	GetByJuryCode(code string) []models.Participant
	GetByID(id string) (models.Participant, bool)
}

// Services holds one instance of each use case, wired to shared collaborators
type Services struct {
	Login        *Login
	Dashboard    *Dashboard
	Participants *CategoryBrowser
	Votes        *VoteLookup
	Submit       *SubmitVote
	Export       *ExportVotes
	Juries       *Registry
	Categories   []models.Category
}

func NewServices(authz Authorizer, participants ParticipantSource, votes store.VoteStore, juries store.JuryStore, categories []models.Category) *Services {
	return &Services{
		Login:        NewLogin(authz),
		Dashboard:    NewDashboard(participants, votes, categories),
		Participants: NewCategoryBrowser(participants, votes),
		Votes:        NewVoteLookup(authz, votes),
		Submit:       NewSubmitVote(authz, participants, votes),
		Export:       NewExportVotes(votes),
		Juries:       NewRegistry(juries, categories),
		Categories:   categories,
	}
}
