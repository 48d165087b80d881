package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxSize is the default file size cap (10MB).
const DefaultMaxSize = 10 << 20

// defaultExtensions lists the file types the extractor understands.
var defaultExtensions = []string{".pdf", ".docx", ".doc", ".txt", ".md", ".html", ".htm"}

// Validation is the structured result of file validation. Failures are
// reported here, never as errors or panics.
type Validation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Validator rejects unsupported, empty, and oversized files before any
// extraction work is attempted.
type Validator struct {
	MaxSize int64
	allowed map[string]struct{}
}

// NewValidator creates a validator with the given size cap and extension
// whitelist. Non-positive maxSize and an empty extension list fall back to
// the defaults.
func NewValidator(maxSize int64, extensions []string) *Validator {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if len(extensions) == 0 {
		extensions = defaultExtensions
	}
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &Validator{MaxSize: maxSize, allowed: allowed}
}

// DefaultValidator returns a validator with default limits.
func DefaultValidator() *Validator {
	return NewValidator(0, nil)
}

// Validate checks a file name and size against the whitelist and limits.
func (v *Validator) Validate(name string, size int64) Validation {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := v.allowed[ext]; !ok {
		return Validation{Error: fmt.Sprintf("unsupported file type %q", ext)}
	}
	if size == 0 {
		return Validation{Error: "file is empty"}
	}
	if size > v.MaxSize {
		return Validation{Error: fmt.Sprintf("file exceeds maximum size of %d bytes", v.MaxSize)}
	}
	return Validation{Valid: true}
}

// ValidateFile stats a file on disk and validates it.
func (v *Validator) ValidateFile(path string) Validation {
	info, err := os.Stat(path)
	if err != nil {
		return Validation{Error: fmt.Sprintf("cannot access file: %v", err)}
	}
	if info.IsDir() {
		return Validation{Error: "path is a directory"}
	}
	return v.Validate(info.Name(), info.Size())
}
