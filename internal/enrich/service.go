package enrich

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
	"github.com/dileepchowdary-git/geolocation/internal/geo"
	"github.com/dileepchowdary-git/geolocation/internal/repo"
)

// Geocoder resolves one address string. Satisfied by geo.Client.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*geo.Location, error)
}

// BatchStats counts one enrichment pass.
type BatchStats struct {
	Processed int
	Saved     int
	Skipped   int
	Failed    int
}

// Service runs the geocoding batch: leads missing coordinates are geocoded
// one at a time and saved unless a row appeared in the meantime. Per-lead
// failures are counted and logged; only a store listing failure aborts.
type Service struct {
	Logger *zap.Logger
	Store  repo.LeadStore
	Geo    Geocoder
	Limit  int           // 0 = all leads
	Pause  time.Duration // delay between API calls, rate-limit courtesy
}

func New(logger *zap.Logger, store repo.LeadStore, geocoder Geocoder, limit int, pause time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Logger: logger,
		Store:  store,
		Geo:    geocoder,
		Limit:  limit,
		Pause:  pause,
	}
}

func (s *Service) Run(ctx context.Context) (BatchStats, error) {
	var stats BatchStats

	leads, err := s.Store.LeadsMissingGeolocation(ctx)
	if err != nil {
		return stats, fmt.Errorf("list leads: %w", err)
	}
	if s.Limit > 0 && len(leads) > s.Limit {
		leads = leads[:s.Limit]
	}
	s.Logger.Info("enrich_batch_start", zap.Int("leads", len(leads)))

	for i, lead := range leads {
		stats.Processed++
		address := geo.BuildAddress(lead)

		loc, err := s.Geo.Geocode(ctx, address)
		if err != nil {
			stats.Failed++
			s.Logger.Warn("lead_geocode_failed",
				zap.Int64("lead_id", lead.ID),
				zap.String("address", address),
				zap.Error(err),
			)
		} else {
			inserted, err := s.Store.SaveGeolocation(ctx, &domain.Geolocation{
				LeadID:           lead.ID,
				Latitude:         loc.Latitude,
				Longitude:        loc.Longitude,
				FormattedAddress: loc.FormattedAddress,
				PlaceID:          loc.PlaceID,
			})
			switch {
			case err != nil:
				stats.Failed++
				s.Logger.Warn("lead_save_failed", zap.Int64("lead_id", lead.ID), zap.Error(err))
			case inserted:
				stats.Saved++
				s.Logger.Info("lead_geocoded",
					zap.Int64("lead_id", lead.ID),
					zap.Float64("lat", loc.Latitude),
					zap.Float64("lng", loc.Longitude),
				)
			default:
				stats.Skipped++
				s.Logger.Info("lead_already_geocoded", zap.Int64("lead_id", lead.ID))
			}
		}

		if i < len(leads)-1 && s.Pause > 0 {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case <-time.After(s.Pause):
			}
		}
	}

	s.Logger.Info("enrich_batch_done",
		zap.Int("processed", stats.Processed),
		zap.Int("saved", stats.Saved),
		zap.Int("skipped", stats.Skipped),
		zap.Int("failed", stats.Failed),
	)
	return stats, nil
}
