// internal/analytics/store.go

// Package analytics is the read-only query surface consumed by the usage
// statistics collaborator. It runs on its own pgx pool so analytics reads
// never contend with the main store's connection budget, and it computes no
// business analytics itself.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/questdeckhq/questdeck/internal/domain"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, connString string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("creating analytics pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging analytics pool: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// OrgStats aggregates per-organization usage counters.
type OrgStats struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	UserCount      int64     `json:"user_count"`
	QuestCount     int64     `json:"quest_count"`
	GrantCount     int64     `json:"grant_count"`
}

func (s *Store) OrgStats(ctx context.Context, orgID uuid.UUID) (*OrgStats, error) {
	stats := &OrgStats{OrganizationID: orgID}

	row := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM users WHERE organization_id = $1),
			(SELECT count(*) FROM quests WHERE owning_organization_id = $1 AND active = true),
			(SELECT count(*) FROM curation_grants WHERE organization_id = $1)
	`, orgID)

	if err := row.Scan(&stats.UserCount, &stats.QuestCount, &stats.GrantCount); err != nil {
		return nil, fmt.Errorf("scanning org stats: %w", errors.Join(domain.ErrUnavailable, err))
	}

	return stats, nil
}

// ActiveOrganizationCount returns the number of active organizations on the
// platform.
func (s *Store) ActiveOrganizationCount(ctx context.Context) (int64, error) {
	var count int64
	row := s.pool.QueryRow(ctx, `SELECT count(*) FROM organizations WHERE active = true`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active organizations: %w", errors.Join(domain.ErrUnavailable, err))
	}
	return count, nil
}
