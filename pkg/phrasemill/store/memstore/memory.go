// Package memstore is an in-memory store.Store implementation, used by
// tests and as the CLI default when no database path is configured.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/internalerr"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/store"
)

// Store is a mutex-guarded map-backed store.
type Store struct {
	mu      sync.RWMutex
	docs    map[string]store.Document
	phrases map[string][]store.Phrase
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		docs:    make(map[string]store.Document),
		phrases: make(map[string][]store.Phrase),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveDocument inserts or replaces a document by ID.
func (s *Store) SaveDocument(ctx context.Context, d store.Document) error {
	if d.ID == "" {
		return internalerr.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[d.ID] = d
	return nil
}

// GetDocument returns a document by ID.
func (s *Store) GetDocument(ctx context.Context, id string) (store.Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[id]
	return d, ok, nil
}

// ListDocuments returns all documents, newest first, ID as tiebreaker.
func (s *Store) ListDocuments(ctx context.Context) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// SavePhrases replaces the stored phrase list for a document.
func (s *Store) SavePhrases(ctx context.Context, docID string, phrases []store.Phrase) error {
	if docID == "" {
		return internalerr.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]store.Phrase, len(phrases))
	copy(copied, phrases)
	s.phrases[docID] = copied
	return nil
}

// PhrasesByDocument returns the stored phrases for a document in rank order.
func (s *Store) PhrasesByDocument(ctx context.Context, docID string) ([]store.Phrase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	phrases, ok := s.phrases[docID]
	if !ok {
		return nil, nil
	}
	out := make([]store.Phrase, len(phrases))
	copy(out, phrases)
	return out, nil
}
