package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pomeroybees/beeyard/internal/domain/models"
)

// Directory maintains the crew member roster.
type Directory struct {
	mu      sync.RWMutex
	members []models.CrewMember
}

// NewDirectory builds a directory seeded with the provided members.
func NewDirectory(seed []models.CrewMember) *Directory {
	d := &Directory{}
	d.members = append(d.members, seed...)
	return d
}

// Members returns the roster in store order.
func (d *Directory) Members() []models.CrewMember {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.CrewMember(nil), d.members...)
}

// AddMember appends a person to the roster. Initials are derived from the
// name when not supplied.
func (d *Directory) AddMember(member models.CrewMember) (models.CrewMember, error) {
	if strings.TrimSpace(member.Name) == "" {
		return models.CrewMember{}, fmt.Errorf("%w: member name is required", ErrValidation)
	}
	if strings.TrimSpace(member.Role) == "" {
		return models.CrewMember{}, fmt.Errorf("%w: member role is required", ErrValidation)
	}

	if member.Initials == "" {
		member.Initials = deriveInitials(member.Name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.members = append(d.members, member)
	return member, nil
}

func deriveInitials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}
