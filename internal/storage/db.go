package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
    id                 UUID PRIMARY KEY,
    file_name          TEXT NOT NULL,
    candidate_name     TEXT NOT NULL DEFAULT '',
    position_title     TEXT NOT NULL DEFAULT '',
    account_manager_id TEXT NOT NULL DEFAULT '',
    skill_categories   TEXT NOT NULL DEFAULT '',
    page_count         INTEGER NOT NULL DEFAULT 0,
    docx_blob          TEXT NOT NULL DEFAULT '',
    pdf_blob           TEXT NOT NULL DEFAULT '',
    status             TEXT NOT NULL,
    error_message      TEXT NOT NULL DEFAULT '',
    duration_ms        BIGINT NOT NULL DEFAULT 0,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS conversions_created_at_idx ON conversions (created_at DESC);
`

// Migrate creates the audit table if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.connection.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (db *DB) SaveConversion(ctx context.Context, c *Conversion) error {
	query := `INSERT INTO conversions (id, file_name, candidate_name, position_title, account_manager_id,
                  skill_categories, page_count, docx_blob, pdf_blob, status, error_message, duration_ms, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := db.connection.ExecContext(ctx, query,
		c.ID,
		c.FileName,
		c.CandidateName,
		c.PositionTitle,
		c.AccountManagerID,
		strings.Join(c.SkillCategories, ","),
		c.PageCount,
		c.DocxBlob,
		c.PDFBlob,
		c.Status,
		c.ErrorMessage,
		c.DurationMS,
		c.CreatedAt,
	)
	return err
}

// buildListQuery returns the newest-first listing query for f using
// ILIKE on candidate name and an exact status match.
func buildListQuery(f ConversionFilter) (string, []any) {
	base := `SELECT id, file_name, candidate_name, position_title, account_manager_id, skill_categories,
                    page_count, docx_blob, pdf_blob, status, error_message, duration_ms, created_at
             FROM conversions`
	var where []string
	var args []any
	i := 1

	if f.CandidateName != "" {
		where = append(where, fmt.Sprintf("candidate_name ILIKE $%d", i))
		args = append(args, "%"+f.CandidateName+"%")
		i++
	}
	if f.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", i))
		args = append(args, f.Status)
		i++
	}
	if len(where) > 0 {
		base += " WHERE " + strings.Join(where, " AND ")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	base += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", i)
	args = append(args, limit)
	return base, args
}

// ListConversions returns audit records, newest first.
func (db *DB) ListConversions(ctx context.Context, f ConversionFilter) ([]Conversion, error) {
	query, args := buildListQuery(f)
	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []Conversion{}
	for rows.Next() {
		var c Conversion
		var skills string
		if err := rows.Scan(&c.ID, &c.FileName, &c.CandidateName, &c.PositionTitle, &c.AccountManagerID, &skills,
			&c.PageCount, &c.DocxBlob, &c.PDFBlob, &c.Status, &c.ErrorMessage, &c.DurationMS, &c.CreatedAt); err != nil {
			return nil, err
		}
		if skills != "" {
			c.SkillCategories = splitAndTrim(skills)
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// RecentConversions is ListConversions without filters.
func (db *DB) RecentConversions(ctx context.Context, limit int) ([]Conversion, error) {
	return db.ListConversions(ctx, ConversionFilter{Limit: limit})
}

// helper to split comma-separated values
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
