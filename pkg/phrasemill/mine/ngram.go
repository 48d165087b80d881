package mine

import (
	"strings"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/pmi"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/textnorm"
)

// gramAgg accumulates evidence for one n-gram before admission into the
// shared pool.
type gramAgg struct {
	text     string // surface form at first sight
	freq     int
	examples []string
	seen     map[string]struct{}
}

// gramTable keys aggregates by normalized gram and preserves insertion
// order for deterministic admission.
type gramTable struct {
	byKey map[string]*gramAgg
	order []string
}

func newGramTable() *gramTable {
	return &gramTable{byKey: make(map[string]*gramAgg)}
}

func (t *gramTable) hit(key, text, sent string, maxExamples int) {
	agg, ok := t.byKey[key]
	if !ok {
		agg = &gramAgg{text: text, seen: make(map[string]struct{})}
		t.byKey[key] = agg
		t.order = append(t.order, key)
	}
	agg.freq++
	if len(agg.examples) < maxExamples {
		if _, dup := agg.seen[sent]; !dup {
			agg.seen[sent] = struct{}{}
			agg.examples = append(agg.examples, sent)
		}
	}
}

// mineCollocations finds statistically associated n-grams. A window is
// admissible when it contains at least one non-stopword, non-numeric token,
// does not start or end with a stopword, and holds no numbers or single
// letters. Grams meeting the frequency floor and scoring strictly positive
// are admitted as collocations unless an earlier strategy already owns the
// key.
func (m *Miner) mineCollocations(p *pool, sentences []string, cfg Config) {
	counts := pmi.NewCounts()
	tokenized := make([][]string, len(sentences))
	for i, sent := range sentences {
		tokenized[i] = textnorm.Tokenize(sent)
		counts.Add(tokenized[i])
	}

	grams := newGramTable()
	for i, tokens := range tokenized {
		for n := cfg.MinNgramSize; n <= cfg.MaxNgramSize; n++ {
			for start := 0; start+n <= len(tokens); start++ {
				window := tokens[start : start+n]
				if !m.admissibleCollocation(window) {
					continue
				}
				key := strings.Join(window, " ")
				grams.hit(key, key, sentences[i], cfg.MaxExamplesPerPhrase)
			}
		}
	}

	for _, key := range grams.order {
		agg := grams.byKey[key]
		if agg.freq < cfg.MinFreq {
			continue
		}
		if _, taken := p.get(key); taken {
			continue
		}

		words := strings.Split(key, " ")
		score := m.calc.Gram(int64(agg.freq), counts.Freqs(words), counts.Total())
		if score <= 0 {
			continue
		}

		c := p.ensure(key, agg.text, TypeCollocation)
		c.Frequency = agg.freq
		for _, ex := range agg.examples {
			c.AddExample(ex, cfg.MaxExamplesPerPhrase)
		}
	}
}

func (m *Miner) admissibleCollocation(window []string) bool {
	hasContent := false
	for i, tok := range window {
		if textnorm.IsNumber(tok) || textnorm.IsSingleLetter(tok) {
			return false
		}
		stop := m.lex.IsStopword(tok)
		if stop && (i == 0 || i == len(window)-1) {
			return false
		}
		if !stop {
			hasContent = true
		}
	}
	return hasContent
}

// mineNounPhrases finds heuristic noun phrases over the same n-gram
// windows, using case-preserving tokens so the TitleCase proper-noun check
// can fire. A window is admissible when its last token is not a stopword,
// at least one token looks like a noun, every token is either a
// non-stopword or looks like an adjective or noun, and there are no numbers
// or single letters. Admission requires the frequency floor; keys owned by
// any earlier strategy are left alone.
func (m *Miner) mineNounPhrases(p *pool, sentences []string, cfg Config) {
	grams := newGramTable()
	for _, sent := range sentences {
		tokens := textnorm.TokenizeCased(sent)
		for n := cfg.MinNgramSize; n <= cfg.MaxNgramSize; n++ {
			for start := 0; start+n <= len(tokens); start++ {
				window := tokens[start : start+n]
				if !m.admissibleNounPhrase(window) {
					continue
				}
				text := strings.Join(window, " ")
				grams.hit(textnorm.NormalizePhrase(text), text, sent, cfg.MaxExamplesPerPhrase)
			}
		}
	}

	for _, key := range grams.order {
		agg := grams.byKey[key]
		if agg.freq < cfg.MinFreq {
			continue
		}
		if _, taken := p.get(key); taken {
			continue
		}

		c := p.ensure(key, agg.text, TypeNounPhrase)
		c.Frequency = agg.freq
		for _, ex := range agg.examples {
			c.AddExample(ex, cfg.MaxExamplesPerPhrase)
		}
	}
}

func (m *Miner) admissibleNounPhrase(window []string) bool {
	hasNoun := false
	for i, tok := range window {
		if textnorm.IsNumber(tok) || textnorm.IsSingleLetter(tok) {
			return false
		}

		noun := m.lex.LooksLikeNoun(tok)
		if noun {
			hasNoun = true
		}

		stop := m.lex.IsStopword(tok)
		if stop && i == len(window)-1 {
			return false
		}
		if stop && !noun && !m.lex.LooksLikeAdjective(tok) {
			return false
		}
	}
	return hasNoun
}
