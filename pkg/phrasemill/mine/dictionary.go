package mine

import (
	"regexp"
	"strings"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/textnorm"
)

// dictPattern is a compiled dictionary entry. canonical is the normalized
// candidate key; matches of re in a sentence count toward that key no
// matter which surface or inflected form appeared.
type dictPattern struct {
	canonical string
	re        *regexp.Regexp
}

// compilePrepPatterns builds case-insensitive, word-boundary,
// whitespace-flexible patterns for the prepositional-phrase list.
func compilePrepPatterns(phrases []string) []dictPattern {
	patterns := make([]dictPattern, 0, len(phrases))
	for _, phrase := range phrases {
		canonical := textnorm.NormalizePhrase(phrase)
		if canonical == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + flexWords(canonical) + `\b`)
		if err != nil {
			continue
		}
		patterns = append(patterns, dictPattern{canonical: canonical, re: re})
	}
	return patterns
}

// compilePhrasalPatterns builds patterns for the phrasal-verb list.
// Two-word entries (verb + particle) match common verb inflections and
// allow one intervening word, so separable usage like "carry it out" still
// counts toward "carry out". Entries of three or more words are matched
// literally. Sentences with two or more words between verb and particle
// ("carry the whole thing out") are a known recall gap.
func compilePhrasalPatterns(verbs []string) []dictPattern {
	patterns := make([]dictPattern, 0, len(verbs))
	for _, entry := range verbs {
		canonical := textnorm.NormalizePhrase(entry)
		words := strings.Fields(canonical)
		if len(words) < 2 {
			continue
		}

		var pattern string
		if len(words) == 2 {
			pattern = `(?i)\b` + inflections(words[0]) +
				`(?:\s+[a-z'-]+)?\s+` + regexp.QuoteMeta(words[1]) + `\b`
		} else {
			pattern = `(?i)\b` + flexWords(canonical) + `\b`
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		patterns = append(patterns, dictPattern{canonical: canonical, re: re})
	}
	return patterns
}

// flexWords joins the words of a phrase with flexible internal whitespace.
func flexWords(phrase string) string {
	words := strings.Fields(phrase)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, `\s+`)
}

// inflections builds an alternation matching the bare verb plus its common
// inflected forms (+s, +es, +ed, +ing), with the usual spelling
// adjustments: consonant-y verbs ("carry") become "carries"/"carried"/
// "carrying", final-e verbs ("take") drop the e before -ing.
func inflections(verb string) string {
	n := len(verb)
	switch {
	case n > 2 && verb[n-1] == 'y' && !isVowel(verb[n-2]):
		return regexp.QuoteMeta(verb[:n-1]) + `(?:y|ies|ied|ying)`
	case n > 2 && verb[n-1] == 'e':
		return regexp.QuoteMeta(verb[:n-1]) + `(?:e|es|ed|ing)`
	default:
		return regexp.QuoteMeta(verb) + `(?:s|es|ed|ing)?`
	}
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// mineDictionary runs one dictionary strategy over all sentences. Every
// regex match increments the candidate's frequency; the containing sentence
// is stored while under the example cap. Candidates already created by an
// earlier strategy keep their type.
func (m *Miner) mineDictionary(p *pool, sentences []string, patterns []dictPattern, t Type, cfg Config) {
	for _, sent := range sentences {
		for _, pat := range patterns {
			matches := pat.re.FindAllString(sent, -1)
			if len(matches) == 0 {
				continue
			}
			c := p.ensure(pat.canonical, matches[0], t)
			c.Frequency += len(matches)
			c.AddExample(sent, cfg.MaxExamplesPerPhrase)
		}
	}
}
