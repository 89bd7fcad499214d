// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/parade-jury/auth"
	"github.com/danielhkuo/parade-jury/models"
)

var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is the static configuration a deployment runs with: the category
// order shown on the dashboard, the participants, and the jury assignments.
type Dataset struct {
	Categories   []models.Category   `yaml:"categories"`
	Participants []models.Participant `yaml:"participants"`
	Assignments  map[string][]string  `yaml:"assignments"`
}

// Load reads a dataset from a YAML file and validates it
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML dataset
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// Validate checks the integrity rules of the dataset. Every assigned
// participant ID must exist in the catalog.
func (ds *Dataset) Validate() error {
	if len(ds.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidDataset)
	}

	categories := make(map[string]bool, len(ds.Categories))
	for _, c := range ds.Categories {
		if c.ID == "" {
			return fmt.Errorf("%w: category id is required", ErrInvalidDataset)
		}
		if categories[c.ID] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidDataset, c.ID)
		}
		categories[c.ID] = true
	}

	participants := make(map[string]bool, len(ds.Participants))
	for _, p := range ds.Participants {
		if p.ID == "" {
			return fmt.Errorf("%w: participant id is required", ErrInvalidDataset)
		}
		if participants[p.ID] {
			return fmt.Errorf("%w: duplicate participant %q", ErrInvalidDataset, p.ID)
		}
		if !categories[p.Category] {
			return fmt.Errorf("%w: participant %q has unknown category %q", ErrInvalidDataset, p.ID, p.Category)
		}
		participants[p.ID] = true
	}

	for code, ids := range ds.Assignments {
		if code != auth.NormalizeCode(code) || code == "" {
			return fmt.Errorf("%w: jury code %q must be trimmed upper-case", ErrInvalidDataset, code)
		}
		// ADMIN is derived from the catalog, never hand-maintained
		if code == auth.AdminCode {
			return fmt.Errorf("%w: %s assignment is derived and must not be configured", ErrInvalidDataset, auth.AdminCode)
		}
		for _, id := range ids {
			if !participants[id] {
				return fmt.Errorf("%w: jury %s is assigned unknown participant %q", ErrInvalidDataset, code, id)
			}
		}
	}

	return nil
}

// ParticipantIDs returns every participant ID in catalog order
func (ds *Dataset) ParticipantIDs() []string {
	ids := make([]string, len(ds.Participants))
	for i, p := range ds.Participants {
		ids[i] = p.ID
	}
	return ids
}

// HasCategory reports whether id is a configured category
func (ds *Dataset) HasCategory(id string) bool {
	for _, c := range ds.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
