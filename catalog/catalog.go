// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/danielhkuo/parade-jury/models"

// AssignmentSource resolves which participants a jury code may act on
type AssignmentSource interface {
	AssignedParticipantIDs(code string) []string
}

// Catalog is the read-only participant registry
type Catalog struct {
	participants []models.Participant
	byID         map[string]int
	access       AssignmentSource
}

// New builds a catalog over the dataset's participants. The dataset is
// copied; later changes to it are not visible.
func New(ds *Dataset, access AssignmentSource) *Catalog {
	c := &Catalog{
		participants: make([]models.Participant, len(ds.Participants)),
		byID:         make(map[string]int, len(ds.Participants)),
		access:       access,
	}
	copy(c.participants, ds.Participants)
	for i, p := range c.participants {
		c.byID[p.ID] = i
	}
	return c
}

// GetAll returns every participant in catalog order
func (c *Catalog) GetAll() []models.Participant {
	out := make([]models.Participant, len(c.participants))
	copy(out, c.participants)
	return out
}

// GetByJuryCode returns the participants assigned to code, in catalog order
func (c *Catalog) GetByJuryCode(code string) []models.Participant {
	allowed := make(map[string]bool)
	for _, id := range c.access.AssignedParticipantIDs(code) {
		allowed[id] = true
	}

	out := []models.Participant{}
	for _, p := range c.participants {
		if allowed[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// GetByID looks up one participant
func (c *Catalog) GetByID(id string) (models.Participant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Participant{}, false
	}
	return c.participants[i], true
}
