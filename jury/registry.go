// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jury

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/parade-jury/models"
	"github.com/danielhkuo/parade-jury/store"
)

// Registry manages the list of jury panels
type Registry struct {
	juries     store.JuryStore
	categories map[string]bool
	now        func() time.Time
}

func NewRegistry(juries store.JuryStore, categories []models.Category) *Registry {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}
	return &Registry{juries: juries, categories: known, now: time.Now}
}

func (r *Registry) Create(ctx context.Context, name, category string) (models.Jury, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Jury{}, invalid("name", "is required")
	}
	if !r.categories[category] {
		return models.Jury{}, invalid("category", "unknown category %q", category)
	}

	jury := models.Jury{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		CreatedAt: r.now().UTC(),
	}
	if err := r.juries.SaveJury(ctx, jury); err != nil {
		return models.Jury{}, fmt.Errorf("failed to save jury: %w", err)
	}
	return jury, nil
}

func (r *Registry) List(ctx context.Context) ([]models.Jury, error) {
	return r.juries.GetAllJuries(ctx)
}

// Get returns store.ErrNotFound for an unknown ID
func (r *Registry) Get(ctx context.Context, id string) (models.Jury, error) {
	return r.juries.GetJury(ctx, id)
}

func (r *Registry) Delete(ctx context.Context, id string) error {
	return r.juries.DeleteJury(ctx, id)
}
