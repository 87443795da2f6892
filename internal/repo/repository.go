package repo

import (
	"context"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

// LeadStore is the port onto the relational store holding lead records and
// their geolocation rows. Swap in any DB adapter later.
type LeadStore interface {
	// LeadsMissingGeolocation lists staged leads with no geolocation row yet.
	LeadsMissingGeolocation(ctx context.Context) ([]domain.Lead, error)
	// SaveGeolocation inserts a geolocation row unless one already exists.
	// Returns false when the lead already had coordinates.
	SaveGeolocation(ctx context.Context, g *domain.Geolocation) (bool, error)
}
