// Package extract holds the pipeline's upstream collaborators: file
// validation and file-to-text extraction. Binary format parsing is
// delegated to docconv; this package never inspects PDF or DOCX internals
// itself.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"code.sajari.com/docconv"
	"golang.org/x/net/html"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/internalerr"
)

// Extraction is the plain-text result of extracting one file. Pages is 0
// when the source format has no page concept or the converter did not
// report one.
type Extraction struct {
	Text  string
	Pages int
	Bytes int64
}

// Extractor converts a file on disk to plain text. A failed conversion
// returns an error; a successful conversion of a file that simply has no
// text returns an empty Text with a nil error. Callers must treat the two
// distinctly.
type Extractor interface {
	ExtractFile(ctx context.Context, path string) (Extraction, error)
}

// FileExtractor dispatches on file extension: docconv for PDF/DOC/DOCX,
// an HTML text walker for HTML, a plain read for text and markdown.
type FileExtractor struct{}

// NewFileExtractor creates a FileExtractor.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// ExtractFile implements Extractor.
func (e *FileExtractor) ExtractFile(ctx context.Context, path string) (Extraction, error) {
	if err := ctx.Err(); err != nil {
		return Extraction{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", internalerr.ErrExtractionFailed, err)
	}
	size := info.Size()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".doc", ".docx":
		return e.extractBinary(path, size)
	case ".html", ".htm":
		return e.extractHTML(path, size)
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return Extraction{}, fmt.Errorf("%w: %v", internalerr.ErrExtractionFailed, err)
		}
		return Extraction{Text: string(data), Bytes: size}, nil
	default:
		return Extraction{}, fmt.Errorf("%w: unsupported extension %q",
			internalerr.ErrInvalidFile, filepath.Ext(path))
	}
}

func (e *FileExtractor) extractBinary(path string, size int64) (Extraction, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", internalerr.ErrExtractionFailed, err)
	}
	return Extraction{Text: res.Body, Pages: pagesFromMeta(res.Meta), Bytes: size}, nil
}

func (e *FileExtractor) extractHTML(path string, size int64) (Extraction, error) {
	f, err := os.Open(path)
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", internalerr.ErrExtractionFailed, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", internalerr.ErrExtractionFailed, err)
	}

	var b strings.Builder
	collectText(doc, &b)
	return Extraction{Text: b.String(), Bytes: size}, nil
}

// collectText gathers text nodes, skipping script and style subtrees.
// Block-level boundaries are approximated with newlines so the downstream
// normalizer can collapse them sensibly.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// pagesFromMeta pulls a page count out of converter metadata when present.
// Key names vary by underlying tool.
func pagesFromMeta(meta map[string]string) int {
	for _, key := range []string{"PageCount", "Pages", "pages"} {
		if v, ok := meta[key]; ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return 0
}
