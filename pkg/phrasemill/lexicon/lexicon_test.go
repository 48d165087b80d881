package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultVocabularies(t *testing.T) {
	lex := Default()

	if len(lex.PrepPhrases) < 100 {
		t.Errorf("expected at least 100 prepositional phrases, got %d", len(lex.PrepPhrases))
	}
	if len(lex.PhrasalVerbs) < 150 {
		t.Errorf("expected at least 150 phrasal verbs, got %d", len(lex.PhrasalVerbs))
	}
	if len(lex.Stopwords()) < 100 {
		t.Errorf("expected at least 100 stopwords, got %d", len(lex.Stopwords()))
	}
}

func TestIsStopword(t *testing.T) {
	lex := Default()

	for _, w := range []string{"the", "and", "of", "The"} {
		if !lex.IsStopword(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}
	if lex.IsStopword("information") {
		t.Error("content words should not be stopwords")
	}

	lex.AddStopword("Foo")
	if !lex.IsStopword("foo") {
		t.Error("added stopword should be found case-insensitively")
	}
	lex.RemoveStopword("foo")
	if lex.IsStopword("foo") {
		t.Error("removed stopword should be gone")
	}
}

func TestLooksLikeNoun(t *testing.T) {
	lex := Default()

	for _, tok := range []string{"information", "management", "happiness", "relationship", "Smith"} {
		if !lex.LooksLikeNoun(tok) {
			t.Errorf("%q should look like a noun", tok)
		}
	}
	for _, tok := range []string{"run", "the", "quickly", "NASA"} {
		if lex.LooksLikeNoun(tok) {
			t.Errorf("%q should not look like a noun", tok)
		}
	}
}

func TestLooksLikeNounStemLength(t *testing.T) {
	lex := Default()
	// Bare suffix or near-bare suffix must not qualify.
	if lex.LooksLikeNoun("ment") {
		t.Error("a bare suffix is not a noun")
	}
}

func TestLooksLikeAdjective(t *testing.T) {
	lex := Default()

	for _, tok := range []string{"effective", "famous", "useful", "statistical", "readable"} {
		if !lex.LooksLikeAdjective(tok) {
			t.Errorf("%q should look like an adjective", tok)
		}
	}
	if lex.LooksLikeAdjective("run") {
		t.Error("plain verbs should not look like adjectives")
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := `
stopwords:
  - foo
  - bar
prep_phrases:
  - in terms of
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}

	if !lex.IsStopword("foo") || lex.IsStopword("the") {
		t.Error("stopwords section should replace the default list")
	}
	if len(lex.PrepPhrases) != 1 {
		t.Errorf("prep_phrases section should replace defaults, got %d entries", len(lex.PrepPhrases))
	}
	if len(lex.PhrasalVerbs) == 0 {
		t.Error("missing sections should keep defaults")
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML("/nonexistent/lexicon.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
