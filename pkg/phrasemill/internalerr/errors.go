package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidFile      = errors.New("invalid file")
	ErrEmptyText        = errors.New("document contains no extractable text")
	ErrExtractionFailed = errors.New("text extraction failed")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
