package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
	"github.com/dileepchowdary-git/geolocation/internal/repo"
)

var _ repo.LeadStore = (*Store)(nil)

// Store is an in-memory LeadStore for tests and local dry runs.
type Store struct {
	mu    sync.RWMutex
	leads map[int64]domain.Lead
	geo   map[int64]domain.Geolocation
}

func New() *Store {
	return &Store{
		leads: make(map[int64]domain.Lead),
		geo:   make(map[int64]domain.Geolocation),
	}
}

// AddLead seeds a lead record.
func (m *Store) AddLead(l domain.Lead) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leads[l.ID] = l
}

func (m *Store) LeadsMissingGeolocation(ctx context.Context) ([]domain.Lead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Lead, 0, len(m.leads))
	for id, l := range m.leads {
		if l.Stage == "" {
			continue
		}
		if _, ok := m.geo[id]; ok {
			continue
		}
		out = append(out, l)
	}
	// same ordering contract as the postgres store
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Store) SaveGeolocation(ctx context.Context, g *domain.Geolocation) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.geo[g.LeadID]; ok {
		return false, nil
	}
	m.geo[g.LeadID] = *g
	return true, nil
}

// Geolocation returns the stored row for a lead, if any.
func (m *Store) Geolocation(id int64) (domain.Geolocation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.geo[id]
	return g, ok
}
