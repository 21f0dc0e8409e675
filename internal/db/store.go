package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
)

// Store stages scraped fitment rows in Postgres before they are exported
// to the read-only sqlite file the server consumes.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

// EnsureSchema creates the staging tables.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS fitment_generations (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS fitment_rows (
			generation_id UUID NOT NULL REFERENCES fitment_generations(id),
			platform TEXT NOT NULL,
			turbo_code TEXT NOT NULL,
			position INT NOT NULL,
			listing_url TEXT NOT NULL,
			UNIQUE (generation_id, platform, turbo_code)
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// BeginGeneration records a new scrape run.
func (s *Store) BeginGeneration(ctx context.Context, id string) error {
	_, err := s.Pool.Exec(ctx,
		"INSERT INTO fitment_generations (id) VALUES ($1)", id)
	if err != nil {
		return fmt.Errorf("begin generation: %w", err)
	}
	return nil
}

// InsertPlatform stages every scraped code for one platform in a single
// transaction. Duplicate codes within the generation are skipped.
func (s *Store) InsertPlatform(ctx context.Context, genID, platform string, codes []catalog.Turbo, listings []string) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, code := range codes {
		listing := ""
		if i < len(listings) {
			listing = listings[i]
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO fitment_rows (generation_id, platform, turbo_code, position, listing_url)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (generation_id, platform, turbo_code) DO NOTHING`,
			genID, platform, string(code), i, listing); err != nil {
			return fmt.Errorf("insert row %s/%s: %w", platform, code, err)
		}
	}
	return tx.Commit(ctx)
}

// LatestGeneration returns the most recent scrape run.
func (s *Store) LatestGeneration(ctx context.Context) (Generation, error) {
	var gen Generation
	err := s.Pool.QueryRow(ctx,
		"SELECT id, created_at FROM fitment_generations ORDER BY created_at DESC LIMIT 1").
		Scan(&gen.ID, &gen.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return gen, fmt.Errorf("no fitment generations staged yet, run ingest first")
	}
	if err != nil {
		return gen, fmt.Errorf("latest generation: %w", err)
	}
	return gen, nil
}

// LoadGeneration reads one generation's table and evidence rows.
func (s *Store) LoadGeneration(ctx context.Context, genID string) (catalog.Table, []catalog.Evidence, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT platform, turbo_code, listing_url FROM fitment_rows
		 WHERE generation_id = $1 ORDER BY platform, position`, genID)
	if err != nil {
		return nil, nil, fmt.Errorf("load generation: %w", err)
	}
	defer rows.Close()

	tbl := catalog.Table{}
	var ev []catalog.Evidence
	for rows.Next() {
		var platform, code, listing string
		if err := rows.Scan(&platform, &code, &listing); err != nil {
			return nil, nil, fmt.Errorf("scan row: %w", err)
		}
		tbl[platform] = append(tbl[platform], catalog.Turbo(code))
		ev = append(ev, catalog.Evidence{Turbo: catalog.Turbo(code), Platform: platform, Listing: listing})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return tbl, ev, nil
}
