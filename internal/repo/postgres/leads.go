package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
	"github.com/dileepchowdary-git/geolocation/internal/repo"
)

var _ repo.LeadStore = (*Store)(nil)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.Ping(ctxPing); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: p}, nil
}

func (s *Store) Close() { s.pool.Close() }

func (s *Store) LeadsMissingGeolocation(ctx context.Context) ([]domain.Lead, error) {
	rows, err := s.pool.Query(ctx, `
SELECT l.id, l.lead_name, l.address, l.pincode, l.state, l.city, l.stage
  FROM lead l
 WHERE l.stage IS NOT NULL
   AND l.id NOT IN (SELECT g.id FROM geolocation g WHERE g.type = 'lead')
 ORDER BY l.id`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []domain.Lead
	for rows.Next() {
		var l domain.Lead
		var name, address, pincode, state, city, stage sql.NullString
		if err := rows.Scan(&l.ID, &name, &address, &pincode, &state, &city, &stage); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		l.Name = name.String
		l.Address = address.String
		l.Pincode = pincode.String
		l.State = state.String
		l.City = city.String
		l.Stage = stage.String
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) SaveGeolocation(ctx context.Context, g *domain.Geolocation) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
INSERT INTO geolocation (id, latitude, longitude, type)
VALUES ($1, $2, $3, 'lead')
ON CONFLICT DO NOTHING`,
		g.LeadID, g.Latitude, g.Longitude)
	if err != nil {
		return false, fmt.Errorf("insert geolocation: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
