package textnorm

import (
	"reflect"
	"strings"
	"testing"
)

func TestFixHyphenation(t *testing.T) {
	if got := FixHyphenation("infor-\nmation"); got != "information" {
		t.Errorf("expected information, got %q", got)
	}

	// Stray whitespace around the break is tolerated
	if got := FixHyphenation("infor- \n  mation"); got != "information" {
		t.Errorf("expected information, got %q", got)
	}

	if got := FixHyphenation("infor-\r\nmation"); got != "information" {
		t.Errorf("expected information with CRLF break, got %q", got)
	}

	// Mid-line hyphens must survive
	if got := FixHyphenation("well-known"); got != "well-known" {
		t.Errorf("mid-line hyphen should be preserved, got %q", got)
	}
}

func TestNormalizeLigatures(t *testing.T) {
	cases := map[string]string{
		"ﬁle":    "file",
		"ﬂow":    "flow",
		"oﬃce":   "office",
		"eﬀort":  "effort",
		"œuvre":  "oeuvre",
		"Æsop":   "AEsop",
		"no ligature": "no ligature",
	}
	for in, want := range cases {
		if got := NormalizeLigatures(in); got != want {
			t.Errorf("NormalizeLigatures(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	in := "a\tb\r\nc    d\n\n\n\n\ne"
	got := CollapseWhitespace(in)

	if strings.Contains(got, "\t") {
		t.Error("tabs should never appear in output")
	}
	if strings.Contains(got, "\r") {
		t.Error("carriage returns should never appear in output")
	}
	if strings.Contains(got, "  ") {
		t.Error("space runs should collapse to one space")
	}
	if strings.Contains(got, "\n\n\n") {
		t.Error("runs of 3+ newlines should collapse to exactly 2")
	}
	if !strings.Contains(got, "d\n\ne") {
		t.Errorf("paragraph break should be preserved, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"",
		"plain text",
		"infor-\nmation about ﬁles",
		"a\tb\r\nc    d\n\n\n\n\ne",
		"  leading and trailing  ",
		"well-known ﬂow of eﬀort\n\n\nnext paragraph",
	}
	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalizePhrase(t *testing.T) {
	if got := NormalizePhrase("  In   Terms  Of "); got != "in terms of" {
		t.Errorf("expected %q, got %q", "in terms of", got)
	}
}

func TestTokenize(t *testing.T) {
	if got := Tokenize("don't it's"); !reflect.DeepEqual(got, []string{"don't", "it's"}) {
		t.Errorf("apostrophes should be retained, got %v", got)
	}
	if got := Tokenize("Hello, world!"); !reflect.DeepEqual(got, []string{"hello", "world"}) {
		t.Errorf("expected [hello world], got %v", got)
	}
	if got := Tokenize("-- '' - "); len(got) != 0 {
		t.Errorf("tokens of only hyphens/apostrophes should be dropped, got %v", got)
	}
	if got := Tokenize("well-known fact"); !reflect.DeepEqual(got, []string{"well-known", "fact"}) {
		t.Errorf("hyphenated words should stay joined, got %v", got)
	}
}

func TestTokenizeCased(t *testing.T) {
	got := TokenizeCased("Dr. Smith's Report")
	want := []string{"Dr", "Smith's", "Report"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestIsNumber(t *testing.T) {
	for _, tok := range []string{"42", "3.14", "100,000", "1.234,56"} {
		if !IsNumber(tok) {
			t.Errorf("IsNumber(%q) should be true", tok)
		}
	}
	for _, tok := range []string{"", "x", "3a", "1.", ".5", "3-4"} {
		if IsNumber(tok) {
			t.Errorf("IsNumber(%q) should be false", tok)
		}
	}
}

func TestIsSingleLetter(t *testing.T) {
	if !IsSingleLetter("a") || !IsSingleLetter("é") {
		t.Error("single runes should count as single letters")
	}
	if IsSingleLetter("ab") || IsSingleLetter("") {
		t.Error("multi-rune and empty tokens are not single letters")
	}
}
