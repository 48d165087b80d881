package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	phrasemill "github.com/phrasemill/phrasemill/pkg/phrasemill"
	"github.com/phrasemill/phrasemill/pkg/phrasemill/config"
)

var (
	minFreq     int
	maxPhrases  int
	maxExamples int
	asJSON      bool
	mineTimeout time.Duration
)

// mineCmd represents the mine command
var mineCmd = &cobra.Command{
	Use:   "mine <file>...",
	Short: "Extract recurring phrases from documents",
	Long: `Mine processes one or more documents (PDF, DOCX, TXT, MD, HTML) and
prints the recurring phrases found in each.

Example:
  phrasemill mine report.pdf
  phrasemill mine --min-freq 3 --json notes.txt chapter.docx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMine,
}

func init() {
	rootCmd.AddCommand(mineCmd)

	mineCmd.Flags().IntVar(&minFreq, "min-freq", 0, "minimum phrase frequency (default from config)")
	mineCmd.Flags().IntVar(&maxPhrases, "max-phrases", 0, "maximum phrases per document (default from config)")
	mineCmd.Flags().IntVar(&maxExamples, "max-examples", 0, "maximum example sentences per phrase (default from config)")
	mineCmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	mineCmd.Flags().DurationVar(&mineTimeout, "timeout", 2*time.Minute, "per-document processing timeout")
}

func runMine(cmd *cobra.Command, args []string) error {
	loader := &config.Loader{Path: cfgFile}
	comp, err := loader.Load()
	if err != nil {
		return err
	}

	cfg := comp.Mining
	if minFreq > 0 {
		cfg.MinFreq = minFreq
	}
	if maxPhrases > 0 {
		cfg.MaxPhrases = maxPhrases
	}
	if maxExamples > 0 {
		cfg.MaxExamplesPerPhrase = maxExamples
	}

	p := phrasemill.New(phrasemill.Options{
		Lexicon:   comp.Lexicon,
		Splitter:  comp.Splitter,
		Validator: comp.Validator,
	})

	results := make([]phrasemill.Result, 0, len(args))
	for _, path := range args {
		if verbose {
			fmt.Fprintf(os.Stderr, "Processing: %s\n", path)
		}

		ctx, cancel := context.WithTimeout(context.Background(), mineTimeout)
		res, err := p.ProcessFile(ctx, path, cfg)
		cancel()
		if err != nil {
			return fmt.Errorf("process %s: %w", path, err)
		}
		results = append(results, res)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, res := range results {
		printResult(res)
	}
	return nil
}

func printResult(res phrasemill.Result) {
	fmt.Printf("%s (%d sentences, %d phrases)\n",
		res.Document.Name, res.Document.Sentences, len(res.Phrases))
	for i, p := range res.Phrases {
		fmt.Printf("  %3d. %-40s %-12s freq=%d score=%.2f\n",
			i+1, p.Text, p.Type, p.Frequency, p.Score)
		if verbose {
			for _, ex := range p.Examples {
				fmt.Printf("       > %s\n", ex)
			}
		}
	}
	fmt.Println()
}
