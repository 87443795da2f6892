package memory

import (
	"context"
	"testing"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

func TestMemoryStore_ListsOnlyStagedLeadsWithoutGeo(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.AddLead(domain.Lead{ID: 1, Name: "staged", Stage: "qualified"})
	s.AddLead(domain.Lead{ID: 2, Name: "unstaged"})
	s.AddLead(domain.Lead{ID: 3, Name: "geocoded", Stage: "qualified"})
	if _, err := s.SaveGeolocation(ctx, &domain.Geolocation{LeadID: 3, Latitude: 1, Longitude: 2}); err != nil {
		t.Fatalf("SaveGeolocation: %v", err)
	}

	leads, err := s.LeadsMissingGeolocation(ctx)
	if err != nil {
		t.Fatalf("LeadsMissingGeolocation: %v", err)
	}
	if len(leads) != 1 || leads[0].ID != 1 {
		t.Fatalf("want only lead 1, got %+v", leads)
	}
}

func TestMemoryStore_ListsLeadsInIDOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.AddLead(domain.Lead{ID: 9, Stage: "s"})
	s.AddLead(domain.Lead{ID: 2, Stage: "s"})
	s.AddLead(domain.Lead{ID: 5, Stage: "s"})

	leads, err := s.LeadsMissingGeolocation(ctx)
	if err != nil {
		t.Fatalf("LeadsMissingGeolocation: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("want 3 leads, got %d", len(leads))
	}
	if leads[0].ID != 2 || leads[1].ID != 5 || leads[2].ID != 9 {
		t.Fatalf("leads not in id order: %+v", leads)
	}
}

func TestMemoryStore_SaveGeolocationSkipsExisting(t *testing.T) {
	ctx := context.Background()
	s := New()

	inserted, err := s.SaveGeolocation(ctx, &domain.Geolocation{LeadID: 7, Latitude: 12.9, Longitude: 77.5})
	if err != nil || !inserted {
		t.Fatalf("first save: inserted=%v err=%v", inserted, err)
	}

	inserted, err = s.SaveGeolocation(ctx, &domain.Geolocation{LeadID: 7, Latitude: 0, Longitude: 0})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if inserted {
		t.Fatalf("existing row must not be overwritten")
	}

	g, ok := s.Geolocation(7)
	if !ok || g.Latitude != 12.9 {
		t.Fatalf("original coordinates lost: %+v ok=%v", g, ok)
	}
}
