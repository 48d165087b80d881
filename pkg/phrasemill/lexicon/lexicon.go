package lexicon

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Minimum stem length left over after removing a suffix for a token to
// count as noun- or adjective-like. Keeps "nation" from matching on "ation".
const minStemLen = 2

var titleCaseRe = regexp.MustCompile(`^[A-Z][a-z]+$`)

// Lexicon bundles the closed reference vocabularies consumed by the mining
// engine: known prepositional phrases, phrasal verbs, stopwords, and the
// morphological suffix lists behind the noun/adjective heuristics.
type Lexicon struct {
	PrepPhrases  []string
	PhrasalVerbs []string
	NounSuffixes []string
	AdjSuffixes  []string

	stopwords map[string]struct{}
}

// New creates a lexicon from explicit vocabularies.
func New(prepPhrases, phrasalVerbs, stopwords, nounSuffixes, adjSuffixes []string) *Lexicon {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Lexicon{
		PrepPhrases:  prepPhrases,
		PhrasalVerbs: phrasalVerbs,
		NounSuffixes: nounSuffixes,
		AdjSuffixes:  adjSuffixes,
		stopwords:    stops,
	}
}

// Default returns a lexicon loaded with the built-in vocabularies.
func Default() *Lexicon {
	return New(defaultPrepPhrases, defaultPhrasalVerbs, defaultStopwords,
		defaultNounSuffixes, defaultAdjSuffixes)
}

// IsStopword checks whether a token is a stopword.
func (l *Lexicon) IsStopword(token string) bool {
	_, ok := l.stopwords[strings.ToLower(token)]
	return ok
}

// Stopwords returns the stopword list in sorted order.
func (l *Lexicon) Stopwords() []string {
	out := make([]string, 0, len(l.stopwords))
	for w := range l.stopwords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// AddStopword adds a word to the stopword set.
func (l *Lexicon) AddStopword(word string) {
	l.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword set.
func (l *Lexicon) RemoveStopword(word string) {
	delete(l.stopwords, strings.ToLower(word))
}

// LooksLikeNoun reports whether a token is noun-like: it either carries a
// known noun suffix with enough stem left over, or is a single TitleCase
// word (a likely proper noun). This is a morphological heuristic, not
// grammatical analysis.
func (l *Lexicon) LooksLikeNoun(token string) bool {
	if titleCaseRe.MatchString(token) {
		return true
	}
	return hasSuffix(strings.ToLower(token), l.NounSuffixes)
}

// LooksLikeAdjective reports whether a token carries a known adjective
// suffix with enough stem left over.
func (l *Lexicon) LooksLikeAdjective(token string) bool {
	return hasSuffix(strings.ToLower(token), l.AdjSuffixes)
}

func hasSuffix(word string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(word, suf) && len(word) >= len(suf)+minStemLen {
			return true
		}
	}
	return false
}

// file is the YAML schema for lexicon overrides. Absent sections fall back
// to the built-in vocabularies.
type file struct {
	PrepPhrases  []string `yaml:"prep_phrases"`
	PhrasalVerbs []string `yaml:"phrasal_verbs"`
	Stopwords    []string `yaml:"stopwords"`
	NounSuffixes []string `yaml:"noun_suffixes"`
	AdjSuffixes  []string `yaml:"adj_suffixes"`
}

// LoadFromYAML loads a lexicon from a YAML file. Sections present in the
// file replace the corresponding built-in list; missing sections keep the
// defaults.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	prep := defaultPrepPhrases
	if len(f.PrepPhrases) > 0 {
		prep = f.PrepPhrases
	}
	verbs := defaultPhrasalVerbs
	if len(f.PhrasalVerbs) > 0 {
		verbs = f.PhrasalVerbs
	}
	stops := defaultStopwords
	if len(f.Stopwords) > 0 {
		stops = f.Stopwords
	}
	nounSuf := defaultNounSuffixes
	if len(f.NounSuffixes) > 0 {
		nounSuf = f.NounSuffixes
	}
	adjSuf := defaultAdjSuffixes
	if len(f.AdjSuffixes) > 0 {
		adjSuf = f.AdjSuffixes
	}

	return New(prep, verbs, stops, nounSuf, adjSuf), nil
}
