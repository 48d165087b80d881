// Package rank turns mined candidates into the final, bounded result list.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/mine"
)

// lengthWeight is the per-word bonus in the composite score: longer phrases
// carry more pedagogical value at equal frequency.
const lengthWeight = 0.3

// Phrase is an immutable ranked extraction result.
type Phrase struct {
	Text       string    `json:"text"`
	Normalized string    `json:"normalized"`
	Type       mine.Type `json:"type"`
	Frequency  int       `json:"frequency"`
	Score      float64   `json:"score"`
	Examples   []string  `json:"examples"`
}

// TypeWeight is the fixed ordinal weight per phrase type. Dictionary-backed
// categories outrank statistically mined ones at equal length and
// frequency.
func TypeWeight(t mine.Type) float64 {
	switch t {
	case mine.TypePrepPhrase:
		return 4
	case mine.TypePhrasalVerb:
		return 3
	case mine.TypeNounPhrase:
		return 2
	case mine.TypeCollocation:
		return 1
	}
	return 0
}

// Scorer ranks candidate pools.
type Scorer struct{}

// NewScorer creates a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the composite score for a candidate:
//
//	score = typeWeight + 0.3*wordCount + log2(frequency + 1)
func (s *Scorer) Score(c *mine.Candidate) float64 {
	words := float64(len(strings.Fields(c.Text)))
	return TypeWeight(c.Type) + lengthWeight*words + math.Log2(float64(c.Frequency)+1)
}

// Rank drops candidates below the frequency floor, scores the rest, sorts
// descending by score with frequency then normalized key as tiebreakers
// (map iteration order must never leak into results), truncates to the
// configured maximum, and materializes immutable Phrase records.
func (s *Scorer) Rank(candidates []*mine.Candidate, cfg mine.Config) []Phrase {
	cfg = cfg.WithDefaults()

	phrases := make([]Phrase, 0, len(candidates))
	for _, c := range candidates {
		if c.Frequency < cfg.MinFreq {
			continue
		}
		phrases = append(phrases, Phrase{
			Text:       c.Text,
			Normalized: c.Normalized,
			Type:       c.Type,
			Frequency:  c.Frequency,
			Score:      s.Score(c),
			Examples:   capExamples(c.Examples, cfg.MaxExamplesPerPhrase),
		})
	}

	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Score != phrases[j].Score {
			return phrases[i].Score > phrases[j].Score
		}
		if phrases[i].Frequency != phrases[j].Frequency {
			return phrases[i].Frequency > phrases[j].Frequency
		}
		return phrases[i].Normalized < phrases[j].Normalized
	})

	if len(phrases) > cfg.MaxPhrases {
		phrases = phrases[:cfg.MaxPhrases]
	}
	return phrases
}

// capExamples copies at most max examples. The miner already enforces the
// cap; this re-enforces it on the way out.
func capExamples(examples []string, max int) []string {
	if len(examples) > max {
		examples = examples[:max]
	}
	out := make([]string, len(examples))
	copy(out, examples)
	return out
}
