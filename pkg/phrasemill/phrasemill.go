// Package phrasemill is a deterministic phrase mining pipeline for raw
// document text: normalize, segment into sentences, mine recurring
// multi-word expressions (prepositional phrases, phrasal verbs,
// collocations, noun phrases), rank, and return a bounded deduplicated
// list with example sentences.
package phrasemill

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/extract"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/internalerr"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/lexicon"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/mine"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/rank"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/sentence"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/store"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/textnorm"
)

// Config is re-exported so callers outside the engine packages only need
// this one import.
type Config = mine.Config

// Phrase is the immutable extraction result.
type Phrase = rank.Phrase

// ExtractPhrases runs the full mining engine over pre-normalized,
// pre-segmented sentences. Deterministic for identical inputs; an empty
// sentence list yields an empty result.
func ExtractPhrases(sentences []string, cfg Config) []Phrase {
	m := mine.NewDefault()
	return rank.NewScorer().Rank(m.Mine(sentences, cfg), cfg)
}

// Pipeline is the document-to-phrases facade: it wires the mining core to
// its collaborators (validator, extractor, optional store).
type Pipeline struct {
	lex       *lexicon.Lexicon
	splitter  *sentence.Splitter
	miner     *mine.Miner
	scorer    *rank.Scorer
	validator *extract.Validator
	extractor extract.Extractor
	store     store.Store
}

// Options configures a Pipeline. Nil fields get defaults; a nil Store
// disables persistence.
type Options struct {
	Lexicon   *lexicon.Lexicon
	Splitter  *sentence.Splitter
	Validator *extract.Validator
	Extractor extract.Extractor
	Store     store.Store
}

// New creates a Pipeline with the given dependencies.
func New(opts Options) *Pipeline {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	splitter := opts.Splitter
	if splitter == nil {
		splitter = sentence.Default()
	}
	validator := opts.Validator
	if validator == nil {
		validator = extract.DefaultValidator()
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = extract.NewFileExtractor()
	}
	return &Pipeline{
		lex:       lex,
		splitter:  splitter,
		miner:     mine.New(lex),
		scorer:    rank.NewScorer(),
		validator: validator,
		extractor: extractor,
		store:     opts.Store,
	}
}

// ExtractPhrases mines pre-segmented sentences with this pipeline's
// lexicon.
func (p *Pipeline) ExtractPhrases(sentences []string, cfg Config) []Phrase {
	return p.scorer.Rank(p.miner.Mine(sentences, cfg), cfg)
}

// ProcessText normalizes raw text, segments it, and mines it. Returns the
// ranked phrases and the sentence count.
func (p *Pipeline) ProcessText(text string, cfg Config) ([]Phrase, int) {
	sentences := p.splitter.Split(textnorm.Normalize(text))
	return p.ExtractPhrases(sentences, cfg), len(sentences)
}

// Result is the outcome of processing one document end to end.
type Result struct {
	Document store.Document `json:"document"`
	Phrases  []Phrase       `json:"phrases"`
}

// ProcessFile validates a file, extracts its text, runs the mining
// pipeline, and persists the result when a store is configured. Extraction
// that yields no text is a terminal failure for the document: the pipeline
// never mines empty input silently.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, cfg Config) (Result, error) {
	if v := p.validator.ValidateFile(path); !v.Valid {
		return Result{}, fmt.Errorf("%w: %s", internalerr.ErrInvalidFile, v.Error)
	}

	ext, err := p.extractor.ExtractFile(ctx, path)
	if err != nil {
		return Result{}, err
	}
	if textnorm.Normalize(ext.Text) == "" {
		return Result{}, internalerr.ErrEmptyText
	}

	phrases, sentenceCount := p.ProcessText(ext.Text, cfg)

	res := Result{
		Document: store.Document{
			ID:        ulid.Make().String(),
			Name:      filepath.Base(path),
			Pages:     ext.Pages,
			Bytes:     ext.Bytes,
			Sentences: sentenceCount,
			CreatedAt: time.Now().UTC(),
		},
		Phrases: phrases,
	}

	if p.store != nil {
		if err := p.store.SaveDocument(ctx, res.Document); err != nil {
			return Result{}, fmt.Errorf("save document: %w", err)
		}
		if err := p.store.SavePhrases(ctx, res.Document.ID, toStored(res.Document.ID, phrases)); err != nil {
			return Result{}, fmt.Errorf("save phrases: %w", err)
		}
	}

	return res, nil
}

func toStored(docID string, phrases []Phrase) []store.Phrase {
	out := make([]store.Phrase, len(phrases))
	for i, p := range phrases {
		out[i] = store.Phrase{
			DocumentID: docID,
			Rank:       i,
			Text:       p.Text,
			Normalized: p.Normalized,
			Type:       string(p.Type),
			Frequency:  p.Frequency,
			Score:      p.Score,
			Examples:   p.Examples,
		}
	}
	return out
}
