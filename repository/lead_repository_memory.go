package repository

import (
	"sync"

	"github.com/danielkoh/property-launches/domain"
)

// LeadRepositoryMemory is an in-memory implementation of LeadRepository.
type LeadRepositoryMemory struct {
	mu    sync.Mutex
	leads []domain.Lead
}

// NewLeadRepositoryMemory creates a new in-memory lead repository.
func NewLeadRepositoryMemory() *LeadRepositoryMemory {
	return &LeadRepositoryMemory{
		leads: []domain.Lead{},
	}
}

// Save stores the lead in memory.
func (r *LeadRepositoryMemory) Save(lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return nil
}

func (r *LeadRepositoryMemory) All() []domain.Lead {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Lead, len(r.leads))
	copy(out, r.leads)
	return out
}
