package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Patterns are compiled once; Normalize runs on every ingested document.
var (
	hyphenBreakRe = regexp.MustCompile(`([A-Za-z])-[ \t]*\r?\n[ \t]*([A-Za-z])`)
	spaceRunRe    = regexp.MustCompile(` {2,}`)
	newlineRunRe  = regexp.MustCompile(`\n{3,}`)
	numberRe      = regexp.MustCompile(`^[0-9]+([.,][0-9]+)*$`)
)

// ligatures maps typographic ligature code points to their ASCII/Latin
// digraph equivalents. PDF extraction frequently emits these.
var ligatures = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬀ", "ff",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"ĳ", "ij",
	"Ĳ", "IJ",
	"œ", "oe",
	"Œ", "OE",
	"æ", "ae",
	"Æ", "AE",
)

// Normalize cleans raw extracted document text. The three steps run in a
// fixed order: hyphenation repair first (it needs the original line breaks),
// then ligature mapping, then whitespace collapsing. The result is stable
// under repeated application.
func Normalize(text string) string {
	text = FixHyphenation(text)
	text = NormalizeLigatures(text)
	return CollapseWhitespace(text)
}

// FixHyphenation rejoins words split across a line break by a trailing
// hyphen ("infor-\nmation" becomes "information"). Mid-line hyphens such as
// "well-known" are left untouched.
func FixHyphenation(text string) string {
	return hyphenBreakRe.ReplaceAllString(text, "$1$2")
}

// NormalizeLigatures replaces typographic ligature code points with their
// multi-character equivalents.
func NormalizeLigatures(text string) string {
	return ligatures.Replace(text)
}

// CollapseWhitespace converts CRLF to LF, tabs to spaces, collapses runs of
// spaces to one, bounds runs of blank lines to a single paragraph break, and
// trims the whole text.
func CollapseWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// NormalizePhrase lowercases a phrase and collapses internal whitespace.
// This is the canonical form used as candidate identity: two surface forms
// with the same normalized phrase are the same candidate.
func NormalizePhrase(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// TokenizeCased splits text into tokens, preserving the original case.
// Every rune that is not a letter, digit, apostrophe or hyphen acts as a
// separator; tokens that are empty or consist solely of hyphens and
// apostrophes are dropped. Apostrophes inside words ("don't") survive.
func TokenizeCased(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if strings.Trim(f, "-'") == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Tokenize is TokenizeCased over the lowercased text.
func Tokenize(text string) []string {
	return TokenizeCased(strings.ToLower(text))
}

// IsNumber reports whether a token is an integer or decimal number. Both
// "." and "," are accepted as decimal/thousands separators, so "3.14" and
// "100,000" both count.
func IsNumber(token string) bool {
	return numberRe.MatchString(token)
}

// IsSingleLetter reports whether a token is exactly one character long.
func IsSingleLetter(token string) bool {
	return utf8.RuneCountInString(token) == 1
}
