// Package sqlite is the durable store.Store implementation backed by a
// single SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite database with WAL mode enabled
// and the schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	pages INTEGER DEFAULT 0,
	bytes INTEGER DEFAULT 0,
	sentences INTEGER DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS phrases (
	document_id TEXT NOT NULL,
	rank INTEGER NOT NULL,
	text TEXT NOT NULL,
	normalized TEXT NOT NULL,
	type TEXT NOT NULL,
	frequency INTEGER NOT NULL,
	score REAL NOT NULL,
	examples TEXT NOT NULL,
	UNIQUE(document_id, rank),
	FOREIGN KEY(document_id) REFERENCES documents(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_phrases_doc ON phrases(document_id);
CREATE INDEX IF NOT EXISTS idx_phrases_normalized ON phrases(normalized);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveDocument inserts or replaces a document by ID.
func (s *sqliteStore) SaveDocument(ctx context.Context, d store.Document) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO documents (id, name, pages, bytes, sentences, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	pages = excluded.pages,
	bytes = excluded.bytes,
	sentences = excluded.sentences,
	created_at = excluded.created_at`,
		d.ID, d.Name, d.Pages, d.Bytes, d.Sentences, d.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// GetDocument returns a document by ID.
func (s *sqliteStore) GetDocument(ctx context.Context, id string) (store.Document, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, pages, bytes, sentences, created_at FROM documents WHERE id = ?`, id)

	d, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return store.Document{}, false, nil
	}
	if err != nil {
		return store.Document{}, false, err
	}
	return d, true, nil
}

// ListDocuments returns all documents, newest first.
func (s *sqliteStore) ListDocuments(ctx context.Context) ([]store.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, pages, bytes, sentences, created_at
FROM documents ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// SavePhrases replaces the stored phrase list for a document in one
// transaction.
func (s *sqliteStore) SavePhrases(ctx context.Context, docID string, phrases []store.Phrase) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM phrases WHERE document_id = ?`, docID); err != nil {
		return fmt.Errorf("clear phrases: %w", err)
	}

	for i, p := range phrases {
		examples, err := json.Marshal(p.Examples)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO phrases (document_id, rank, text, normalized, type, frequency, score, examples)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			docID, i, p.Text, p.Normalized, p.Type, p.Frequency, p.Score, string(examples))
		if err != nil {
			return fmt.Errorf("save phrase: %w", err)
		}
	}

	return tx.Commit()
}

// PhrasesByDocument returns the stored phrases for a document in rank order.
func (s *sqliteStore) PhrasesByDocument(ctx context.Context, docID string) ([]store.Phrase, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT document_id, rank, text, normalized, type, frequency, score, examples
FROM phrases WHERE document_id = ? ORDER BY rank ASC`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Phrase
	for rows.Next() {
		var p store.Phrase
		var examples string
		if err := rows.Scan(&p.DocumentID, &p.Rank, &p.Text, &p.Normalized,
			&p.Type, &p.Frequency, &p.Score, &examples); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(examples), &p.Examples); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (store.Document, error) {
	var d store.Document
	var created string
	if err := row.Scan(&d.ID, &d.Name, &d.Pages, &d.Bytes, &d.Sentences, &created); err != nil {
		return store.Document{}, err
	}
	t, err := parseTime(created)
	if err != nil {
		return store.Document{}, err
	}
	d.CreatedAt = t
	return d, nil
}

const timeLayout = "2006-01-02T15:04:05.000Z"

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
