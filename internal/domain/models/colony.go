package models

import "time"

// ColonyType records how a colony was established.
type ColonyType string

const (
	ColonyOverwintered ColonyType = "Overwintered"
	ColonySplit        ColonyType = "Split"
	ColonySwarm        ColonyType = "Swarm"
)

// ColonyStatus tracks the lifecycle of a colony in the yard.
type ColonyStatus string

const (
	ColonyActive    ColonyStatus = "Active"
	ColonyPlanned   ColonyStatus = "Planned"
	ColonyCollapsed ColonyStatus = "Collapsed"
)

// ColonyProfile describes a single colony. Profiles are updated by full
// replacement and carry no audit trail, unlike inventory items.
type ColonyProfile struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           ColonyType   `json:"type"`
	Status         ColonyStatus `json:"status"`
	QueenName      string       `json:"queenName,omitempty"`
	HealthScore    int          `json:"healthScore"`
	LastInspection time.Time    `json:"lastInspection"`
	Notes          string       `json:"notes"`
}
