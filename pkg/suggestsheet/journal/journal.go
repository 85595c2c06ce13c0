// Package journal keeps an append-only SQLite log of fetched suggestions.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS suggestions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    book TEXT NOT NULL,
    sheet TEXT NOT NULL,
    row_num INTEGER NOT NULL,
    keyword TEXT NOT NULL,
    longest TEXT NOT NULL,
    shortest TEXT NOT NULL,
    fetched_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_suggestions_keyword ON suggestions(keyword);
`

// Journal records every fetch. It satisfies suggestsheet.Recorder.
type Journal struct {
	db *sql.DB
}

var _ suggestsheet.Recorder = (*Journal)(nil)

// Open opens or creates the journal database at path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Record appends one fetched row.
func (j *Journal) Record(ctx context.Context, rec suggestsheet.Record) error {
	const stmt = `INSERT INTO suggestions
        (book, sheet, row_num, keyword, longest, shortest, fetched_at)
        VALUES (?, ?, ?, ?, ?, ?, ?);`

	fetchedAt := rec.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err := j.db.ExecContext(ctx, stmt,
		rec.Book,
		rec.Sheet,
		rec.Row,
		rec.Keyword,
		rec.Result.Longest,
		rec.Result.Shortest,
		fetchedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert suggestion: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]suggestsheet.Record, error) {
	const query = `SELECT book, sheet, row_num, keyword, longest, shortest, fetched_at
        FROM suggestions ORDER BY id DESC LIMIT ?;`

	rows, err := j.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []suggestsheet.Record
	for rows.Next() {
		var (
			rec       suggestsheet.Record
			s         models.Suggestions
			fetchedAt string
		)
		if err := rows.Scan(&rec.Book, &rec.Sheet, &rec.Row, &rec.Keyword,
			&s.Longest, &s.Shortest, &fetchedAt); err != nil {
			return nil, err
		}
		rec.Result = s
		if t, err := time.Parse(time.RFC3339Nano, fetchedAt); err == nil {
			rec.FetchedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}
