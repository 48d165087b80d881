package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `
extraction:
  min_freq: 3
  max_phrases: 50
server:
  addr: ":9090"
  db_path: "phrases.db"
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Extraction.MinFreq != 3 || f.Extraction.MaxPhrases != 50 {
		t.Errorf("unexpected extraction section: %+v", f.Extraction)
	}
	if f.Server.Addr != ":9090" {
		t.Errorf("unexpected server addr: %q", f.Server.Addr)
	}
}

func TestMiningConfigDefaults(t *testing.T) {
	f := &File{}
	cfg := f.MiningConfig()
	if cfg.MinFreq != 2 || cfg.MaxPhrases != 200 || cfg.MaxExamplesPerPhrase != 3 ||
		cfg.MinNgramSize != 2 || cfg.MaxNgramSize != 5 {
		t.Errorf("unset fields should fall back to defaults, got %+v", cfg)
	}
}

func TestLoaderDefaults(t *testing.T) {
	l := &Loader{}
	comp, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Lexicon == nil || comp.Splitter == nil || comp.Miner == nil || comp.Validator == nil {
		t.Error("all components should be initialized")
	}
	if comp.Mining.MinFreq != 2 {
		t.Errorf("expected default mining config, got %+v", comp.Mining)
	}
}

func TestLoaderWithLexiconOverride(t *testing.T) {
	lexPath := writeFile(t, "lexicon.yaml", `
stopwords:
  - foo
`)
	cfgPath := writeFile(t, "config.yaml", `
extraction:
  min_freq: 4
lexicon:
  path: `+lexPath+`
`)

	l := &Loader{Path: cfgPath}
	comp, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Mining.MinFreq != 4 {
		t.Errorf("expected min_freq 4, got %d", comp.Mining.MinFreq)
	}
	if !comp.Lexicon.IsStopword("foo") {
		t.Error("lexicon override should be loaded")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "extraction: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
