// Package mine implements the multi-strategy phrase mining engine. Four
// strategies run in fixed priority order over one shared candidate pool:
// prepositional-phrase matching, phrasal-verb matching, statistical
// collocation mining, and heuristic noun-phrase mining. The first strategy
// to create a candidate decides its type; later strategies only accumulate
// frequency and examples.
package mine

import (
	"github.com/phrasemill/phrasemill/pkg/phrasemill/lexicon"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/pmi"
)

// Defaults for unset Config fields.
const (
	DefaultMinFreq              = 2
	DefaultMaxPhrases           = 200
	DefaultMaxExamplesPerPhrase = 3
	DefaultMinNgramSize         = 2
	DefaultMaxNgramSize         = 5
)

// Config controls a single mining run. Zero values fall back to defaults.
type Config struct {
	MinFreq              int
	MaxPhrases           int
	MaxExamplesPerPhrase int
	MinNgramSize         int
	MaxNgramSize         int
}

// DefaultConfig returns the default mining configuration.
func DefaultConfig() Config {
	return Config{
		MinFreq:              DefaultMinFreq,
		MaxPhrases:           DefaultMaxPhrases,
		MaxExamplesPerPhrase: DefaultMaxExamplesPerPhrase,
		MinNgramSize:         DefaultMinNgramSize,
		MaxNgramSize:         DefaultMaxNgramSize,
	}
}

// WithDefaults fills unset (non-positive) fields with defaults.
func (c Config) WithDefaults() Config {
	if c.MinFreq < 1 {
		c.MinFreq = DefaultMinFreq
	}
	if c.MaxPhrases < 1 {
		c.MaxPhrases = DefaultMaxPhrases
	}
	if c.MaxExamplesPerPhrase < 1 {
		c.MaxExamplesPerPhrase = DefaultMaxExamplesPerPhrase
	}
	if c.MinNgramSize < 1 {
		c.MinNgramSize = DefaultMinNgramSize
	}
	if c.MaxNgramSize < c.MinNgramSize {
		c.MaxNgramSize = DefaultMaxNgramSize
	}
	return c
}

// Type classifies a mined phrase by the strategy that created it.
type Type string

const (
	TypePrepPhrase  Type = "prep_phrase"
	TypePhrasalVerb Type = "phrasal_verb"
	TypeCollocation Type = "collocation"
	TypeNounPhrase  Type = "noun_phrase"
)

// Candidate is a phrase accumulating evidence during a mining run. Identity
// is the Normalized key: surface variants of the same normalized phrase
// merge into one candidate.
type Candidate struct {
	Text       string // first-seen surface form
	Normalized string // lowercased, whitespace-collapsed key
	Type       Type   // set at creation, never downgraded
	Frequency  int
	Examples   []string

	seen map[string]struct{}
}

func newCandidate(text, normalized string, t Type) *Candidate {
	return &Candidate{
		Text:       text,
		Normalized: normalized,
		Type:       t,
		seen:       make(map[string]struct{}),
	}
}

// AddExample records a distinct containing sentence, up to max.
func (c *Candidate) AddExample(sent string, max int) {
	if len(c.Examples) >= max {
		return
	}
	if _, ok := c.seen[sent]; ok {
		return
	}
	c.seen[sent] = struct{}{}
	c.Examples = append(c.Examples, sent)
}

// pool is the shared candidate map plus insertion order, so iteration stays
// deterministic regardless of map ordering.
type pool struct {
	byKey map[string]*Candidate
	order []string
}

func newPool() *pool {
	return &pool{byKey: make(map[string]*Candidate)}
}

func (p *pool) get(key string) (*Candidate, bool) {
	c, ok := p.byKey[key]
	return c, ok
}

// ensure returns the candidate for key, creating it with the given surface
// form and type if absent. An existing candidate keeps its type.
func (p *pool) ensure(key, text string, t Type) *Candidate {
	if c, ok := p.byKey[key]; ok {
		return c
	}
	c := newCandidate(text, key, t)
	p.byKey[key] = c
	p.order = append(p.order, key)
	return c
}

func (p *pool) all() []*Candidate {
	out := make([]*Candidate, len(p.order))
	for i, key := range p.order {
		out[i] = p.byKey[key]
	}
	return out
}

// Miner runs the four extraction strategies. Construction compiles the
// dictionary regexes once; a Miner is safe for concurrent Mine calls since
// each run builds fresh candidate storage.
type Miner struct {
	lex     *lexicon.Lexicon
	prep    []dictPattern
	phrasal []dictPattern
	calc    *pmi.Calculator
}

// New creates a miner over the given lexicon.
func New(lex *lexicon.Lexicon) *Miner {
	return &Miner{
		lex:     lex,
		prep:    compilePrepPatterns(lex.PrepPhrases),
		phrasal: compilePhrasalPatterns(lex.PhrasalVerbs),
		calc:    pmi.NewCalculator(1.0),
	}
}

// NewDefault creates a miner over the built-in lexicon.
func NewDefault() *Miner {
	return New(lexicon.Default())
}

// Mine runs all four strategies over the sentence list and returns the
// merged candidate pool in deterministic (insertion) order. Candidates are
// not yet frequency-filtered or scored; that is the ranker's job.
func (m *Miner) Mine(sentences []string, cfg Config) []*Candidate {
	cfg = cfg.WithDefaults()
	if len(sentences) == 0 {
		return nil
	}

	p := newPool()
	m.mineDictionary(p, sentences, m.prep, TypePrepPhrase, cfg)
	m.mineDictionary(p, sentences, m.phrasal, TypePhrasalVerb, cfg)
	m.mineCollocations(p, sentences, cfg)
	m.mineNounPhrases(p, sentences, cfg)
	return p.all()
}
