package sentence

import (
	"regexp"
	"strings"
)

const (
	minSentenceLen   = 10
	minSentenceWords = 3
)

// boundaryRe finds runs of sentence-ending punctuation followed by
// whitespace or end of text.
var boundaryRe = regexp.MustCompile(`([.!?]+)(\s+|$)`)

// defaultAbbreviations lists final words that end in a period without
// ending a sentence: titles, units, organizational shorthand, degrees.
// Entries are lowercase with trailing periods stripped.
var defaultAbbreviations = []string{
	// titles
	"mr", "mrs", "ms", "dr", "prof", "rev", "hon", "sr", "jr", "st",
	"gen", "col", "lt", "sgt", "capt", "cmdr", "adm", "maj", "gov", "sen", "rep",
	// common abbreviations
	"etc", "inc", "ltd", "co", "corp", "dept", "univ", "assn", "bros",
	"vs", "vol", "no", "pp", "p", "fig", "figs", "ed", "eds", "al",
	"e.g", "i.e", "cf", "ca", "viz", "approx", "est", "misc", "dist",
	"ave", "blvd", "rd", "mt", "ft",
	// months
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
	// academic degrees
	"ph.d", "m.d", "b.a", "m.a", "b.s", "m.s", "d.d.s", "j.d", "ll.b", "ll.m",
}

// Splitter segments normalized text into sentences.
type Splitter struct {
	abbrev map[string]struct{}
}

// NewSplitter creates a splitter with the given abbreviation exception list.
func NewSplitter(abbreviations []string) *Splitter {
	set := make(map[string]struct{}, len(abbreviations))
	for _, a := range abbreviations {
		set[strings.ToLower(strings.TrimSuffix(a, "."))] = struct{}{}
	}
	return &Splitter{abbrev: set}
}

// Default returns a splitter loaded with the built-in abbreviation list.
func Default() *Splitter {
	return NewSplitter(defaultAbbreviations)
}

// Split segments text into sentences on runs of ".", "!" or "?" followed by
// whitespace or end of text. A period after a known abbreviation does not
// close the sentence. Fragments shorter than 10 characters or with fewer
// than 3 words are discarded as noise (headers, page numbers, stray lines).
func (s *Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	var cur strings.Builder

	flush := func() {
		sent := strings.TrimSpace(cur.String())
		cur.Reset()
		if keepSentence(sent) {
			sentences = append(sentences, sent)
		}
	}

	prev := 0
	for _, loc := range boundaryRe.FindAllStringSubmatchIndex(text, -1) {
		punctEnd := loc[3]
		punct := text[loc[2]:loc[3]]

		cur.WriteString(text[prev:punctEnd])
		prev = loc[1]

		if s.isAbbreviationEnd(cur.String()) && !strings.ContainsAny(punct, "!?") {
			// False boundary: keep accumulating into the current sentence.
			cur.WriteString(" ")
			continue
		}
		flush()
	}

	if prev < len(text) {
		cur.WriteString(text[prev:])
	}
	if cur.Len() > 0 {
		flush()
	}

	return sentences
}

// SplitSimple is a stricter variant: it splits only where sentence-ending
// punctuation is followed by whitespace and a capital letter, with no
// abbreviation handling. Useful when precision matters more than recall.
func (s *Splitter) SplitSimple(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range simpleBoundaryRe.FindAllStringIndex(text, -1) {
		sent := strings.TrimSpace(text[start : loc[0]+1])
		if len(sent) >= minSentenceLen {
			sentences = append(sentences, sent)
		}
		// The match ends right after the capital letter that opens the
		// next sentence.
		start = loc[1] - 1
	}

	if rest := strings.TrimSpace(text[start:]); len(rest) >= minSentenceLen {
		sentences = append(sentences, rest)
	}
	return sentences
}

var simpleBoundaryRe = regexp.MustCompile(`[.!?]\s+[A-Z]`)

// isAbbreviationEnd checks whether the accumulated text ends in a word from
// the abbreviation list (lowercased, outer punctuation stripped).
func (s *Splitter) isAbbreviationEnd(acc string) bool {
	fields := strings.Fields(acc)
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(fields[len(fields)-1])
	last = strings.Trim(last, `.,;:!?"'()[]`)
	_, ok := s.abbrev[last]
	return ok
}

func keepSentence(sent string) bool {
	return len(sent) >= minSentenceLen && len(strings.Fields(sent)) >= minSentenceWords
}
