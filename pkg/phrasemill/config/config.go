// Package config loads YAML configuration and builds pipeline components
// from it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/extract"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/lexicon"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/mine"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/sentence"
)

// File is the top-level YAML configuration schema.
type File struct {
	Extraction Extraction `yaml:"extraction"`
	Lexicon    Lexicon    `yaml:"lexicon"`
	Server     Server     `yaml:"server"`
}

// Extraction holds mining knobs. Zero fields fall back to engine defaults.
type Extraction struct {
	MinFreq              int `yaml:"min_freq"`
	MaxPhrases           int `yaml:"max_phrases"`
	MaxExamplesPerPhrase int `yaml:"max_examples_per_phrase"`
	MinNgramSize         int `yaml:"min_ngram_size"`
	MaxNgramSize         int `yaml:"max_ngram_size"`
}

// Lexicon holds optional vocabulary override paths.
type Lexicon struct {
	Path string `yaml:"path"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr           string   `yaml:"addr"`
	DBPath         string   `yaml:"db_path"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes"`
}

// Load reads a YAML configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &f, nil
}

// MiningConfig converts the extraction section to an engine config with
// defaults applied.
func (f *File) MiningConfig() mine.Config {
	return mine.Config{
		MinFreq:              f.Extraction.MinFreq,
		MaxPhrases:           f.Extraction.MaxPhrases,
		MaxExamplesPerPhrase: f.Extraction.MaxExamplesPerPhrase,
		MinNgramSize:         f.Extraction.MinNgramSize,
		MaxNgramSize:         f.Extraction.MaxNgramSize,
	}.WithDefaults()
}

// Components holds the constructed pipeline dependencies.
type Components struct {
	Lexicon   *lexicon.Lexicon
	Splitter  *sentence.Splitter
	Miner     *mine.Miner
	Validator *extract.Validator
	Mining    mine.Config
}

// Loader builds components from an optional config file path.
type Loader struct {
	Path string
}

// Load reads configuration (when Path is set) and returns initialized
// components. A missing path yields all defaults.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Splitter:  sentence.Default(),
		Validator: extract.DefaultValidator(),
		Mining:    mine.DefaultConfig(),
	}

	var f *File
	if l.Path != "" {
		loaded, err := Load(l.Path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		f = loaded
		comp.Mining = f.MiningConfig()
	}

	if f != nil && f.Lexicon.Path != "" {
		lex, err := lexicon.LoadFromYAML(f.Lexicon.Path)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	} else {
		comp.Lexicon = lexicon.Default()
	}

	comp.Miner = mine.New(comp.Lexicon)
	return comp, nil
}
