// Package store defines persistence for extraction results. The mining
// core itself stays persistence-free; stores are wired in by the
// surrounding pipeline and server.
package store

import (
	"context"
	"time"
)

// Store persists documents and their extracted phrases.
type Store interface {
	Close() error

	SaveDocument(ctx context.Context, d Document) error
	GetDocument(ctx context.Context, id string) (Document, bool, error)
	ListDocuments(ctx context.Context) ([]Document, error)

	SavePhrases(ctx context.Context, docID string, phrases []Phrase) error
	PhrasesByDocument(ctx context.Context, docID string) ([]Phrase, error)
}

// Document records one processed source file.
type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pages     int       `json:"pages"`
	Bytes     int64     `json:"bytes"`
	Sentences int       `json:"sentences"`
	CreatedAt time.Time `json:"created_at"`
}

// Phrase is a stored extraction result, ordered by rank within a document.
type Phrase struct {
	DocumentID string   `json:"document_id"`
	Rank       int      `json:"rank"`
	Text       string   `json:"text"`
	Normalized string   `json:"normalized"`
	Type       string   `json:"type"`
	Frequency  int      `json:"frequency"`
	Score      float64  `json:"score"`
	Examples   []string `json:"examples"`
}
