package phrasemill

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/internalerr"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/mine"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/store/memstore"
)

var sampleSentences = []string{
	"The committee will carry out a detailed review in terms of budget impact.",
	"They carried out interviews and framed the findings in terms of risk.",
	"Our analysts think in terms of long-term statistical trends.",
	"Statistical trends help the committee carry out better planning.",
}

func TestExtractPhrasesEndToEnd(t *testing.T) {
	phrases := ExtractPhrases(sampleSentences, mine.DefaultConfig())
	if len(phrases) == 0 {
		t.Fatal("expected phrases from sample sentences")
	}

	byKey := map[string]Phrase{}
	for _, p := range phrases {
		byKey[p.Normalized] = p
	}

	prep, ok := byKey["in terms of"]
	if !ok {
		t.Fatal("expected 'in terms of'")
	}
	if prep.Type != mine.TypePrepPhrase || prep.Frequency != 3 {
		t.Errorf("unexpected prep phrase: %+v", prep)
	}

	pv, ok := byKey["carry out"]
	if !ok {
		t.Fatal("expected 'carry out'")
	}
	if pv.Type != mine.TypePhrasalVerb || pv.Frequency != 3 {
		t.Errorf("unexpected phrasal verb: %+v", pv)
	}
}

func TestExtractPhrasesDeterministic(t *testing.T) {
	a := ExtractPhrases(sampleSentences, mine.DefaultConfig())
	b := ExtractPhrases(sampleSentences, mine.DefaultConfig())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs must produce identical output sequences")
	}
}

func TestExtractPhrasesFrequencyFloorAndCap(t *testing.T) {
	cfg := mine.Config{MinFreq: 3, MaxPhrases: 2}
	phrases := ExtractPhrases(sampleSentences, cfg)

	if len(phrases) > 2 {
		t.Errorf("result must respect maxPhrases, got %d", len(phrases))
	}
	for _, p := range phrases {
		if p.Frequency < 3 {
			t.Errorf("phrase %q below frequency floor", p.Normalized)
		}
	}
}

func TestExtractPhrasesEmpty(t *testing.T) {
	if got := ExtractPhrases(nil, mine.DefaultConfig()); len(got) != 0 {
		t.Errorf("empty input should yield empty output, got %d", len(got))
	}
}

func TestProcessText(t *testing.T) {
	p := New(Options{})
	text := "The team will carry out the audit. They carried out a similar audit last year. " +
		"Each audit is framed in terms of compliance. Results are read in terms of compliance too."

	phrases, sentences := p.ProcessText(text, mine.DefaultConfig())
	if sentences != 4 {
		t.Errorf("expected 4 sentences, got %d", sentences)
	}
	found := false
	for _, ph := range phrases {
		if ph.Normalized == "carry out" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'carry out' from normalized raw text")
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	text := "We carry out weekly reviews in terms of team goals. " +
		"Managers carried out the last review in terms of team goals."
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	st := memstore.New()
	p := New(Options{Store: st})

	res, err := p.ProcessFile(context.Background(), path, mine.DefaultConfig())
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if res.Document.ID == "" || res.Document.Name != "doc.txt" {
		t.Errorf("unexpected document: %+v", res.Document)
	}
	if res.Document.Sentences != 2 {
		t.Errorf("expected 2 sentences, got %d", res.Document.Sentences)
	}
	if len(res.Phrases) == 0 {
		t.Fatal("expected phrases")
	}

	// Results must be persisted when a store is configured.
	stored, err := st.PhrasesByDocument(context.Background(), res.Document.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != len(res.Phrases) {
		t.Errorf("stored %d phrases, want %d", len(stored), len(res.Phrases))
	}
	if _, ok, _ := st.GetDocument(context.Background(), res.Document.ID); !ok {
		t.Error("document should be persisted")
	}
}

func TestProcessFileInvalid(t *testing.T) {
	p := New(Options{})

	_, err := p.ProcessFile(context.Background(), "/nonexistent/file.pdf", mine.DefaultConfig())
	if !errors.Is(err, internalerr.ErrInvalidFile) {
		t.Errorf("expected ErrInvalidFile, got %v", err)
	}
}

func TestProcessFileEmptyText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.txt")
	if err := os.WriteFile(path, []byte("   \n\n  \t "), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(Options{})
	_, err := p.ProcessFile(context.Background(), path, mine.DefaultConfig())
	if !errors.Is(err, internalerr.ErrEmptyText) {
		t.Errorf("whitespace-only text must be a terminal failure, got %v", err)
	}
}
