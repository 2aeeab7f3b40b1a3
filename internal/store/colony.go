package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

// Registry maintains colony profiles. Profiles carry no audit trail and are
// updated by full replacement.
type Registry struct {
	mu       sync.RWMutex
	colonies []models.ColonyProfile
}

// NewRegistry builds a registry seeded with the provided profiles.
func NewRegistry(seed []models.ColonyProfile) *Registry {
	r := &Registry{}
	r.colonies = append(r.colonies, seed...)
	return r
}

// AddColony inserts a new profile at the end of the registry. An id is
// assigned when absent.
func (r *Registry) AddColony(colony models.ColonyProfile) (models.ColonyProfile, error) {
	if strings.TrimSpace(colony.Name) == "" {
		return models.ColonyProfile{}, fmt.Errorf("%w: colony name is required", ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if colony.ID == "" {
		colony.ID = uuid.NewString()
	}
	r.colonies = append(r.colonies, colony)
	return colony, nil
}

// SaveColony replaces the profile matching the given id. An unmatched id is
// reported as ErrNotFound rather than silently ignored.
func (r *Registry) SaveColony(colony models.ColonyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.colonies {
		if r.colonies[i].ID == colony.ID {
			r.colonies[i] = colony
			return nil
		}
	}
	return fmt.Errorf("%w: colony %s", ErrNotFound, colony.ID)
}

// Get returns the profile with the given id.
func (r *Registry) Get(id string) (models.ColonyProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.colonies {
		if r.colonies[i].ID == id {
			return r.colonies[i], nil
		}
	}
	return models.ColonyProfile{}, fmt.Errorf("%w: colony %s", ErrNotFound, id)
}

// Colonies returns every profile in store order.
func (r *Registry) Colonies() []models.ColonyProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.ColonyProfile(nil), r.colonies...)
}

// Replace swaps the full profile list. Used by backup restore.
func (r *Registry) Replace(colonies []models.ColonyProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colonies = append([]models.ColonyProfile(nil), colonies...)
}
