package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
)

// Generation identifies one scrape run of the fitment table.
type Generation struct {
	ID        string
	CreatedAt time.Time
}

const fitmentSchema = `
CREATE TABLE IF NOT EXISTS generation (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS fitment (
	platform TEXT NOT NULL,
	turbo_code TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (platform, turbo_code)
);
CREATE TABLE IF NOT EXISTS evidence (
	turbo_code TEXT NOT NULL,
	platform TEXT NOT NULL,
	listing_url TEXT NOT NULL
);
`

// InitFitmentSchema creates the fitment tables in a writable database.
func InitFitmentSchema(db *sql.DB) error {
	if _, err := db.Exec(fitmentSchema); err != nil {
		return fmt.Errorf("init fitment schema: %w", err)
	}
	return nil
}

// WriteFitment replaces the database contents with one generation's table
// and evidence rows.
func WriteFitment(db *sql.DB, gen Generation, tbl catalog.Table, ev []catalog.Evidence) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM generation", "DELETE FROM fitment", "DELETE FROM evidence"} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}
	}

	if _, err := tx.Exec("INSERT INTO generation (id, created_at) VALUES (?, ?)",
		gen.ID, gen.CreatedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}

	for platform, codes := range tbl {
		for i, code := range codes {
			if _, err := tx.Exec(
				"INSERT OR IGNORE INTO fitment (platform, turbo_code, position) VALUES (?, ?, ?)",
				platform, string(code), i); err != nil {
				return fmt.Errorf("insert fitment %s/%s: %w", platform, code, err)
			}
		}
	}

	for _, e := range ev {
		if _, err := tx.Exec(
			"INSERT INTO evidence (turbo_code, platform, listing_url) VALUES (?, ?, ?)",
			string(e.Turbo), e.Platform, e.Listing); err != nil {
			return fmt.Errorf("insert evidence: %w", err)
		}
	}

	return tx.Commit()
}

// LoadFitment reads the scraped platform→codes table and its generation
// metadata from a fitment database.
func LoadFitment(db *sql.DB) (catalog.Table, Generation, error) {
	var gen Generation
	var created string
	err := db.QueryRow("SELECT id, created_at FROM generation LIMIT 1").Scan(&gen.ID, &created)
	if err != nil {
		return nil, gen, fmt.Errorf("read generation: %w", err)
	}
	if gen.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, gen, fmt.Errorf("parse generation time: %w", err)
	}

	rows, err := db.Query("SELECT platform, turbo_code FROM fitment ORDER BY platform, position")
	if err != nil {
		return nil, gen, fmt.Errorf("read fitment: %w", err)
	}
	defer rows.Close()

	tbl := catalog.Table{}
	for rows.Next() {
		var platform, code string
		if err := rows.Scan(&platform, &code); err != nil {
			return nil, gen, fmt.Errorf("scan fitment: %w", err)
		}
		tbl[platform] = append(tbl[platform], catalog.Turbo(code))
	}
	return tbl, gen, rows.Err()
}
