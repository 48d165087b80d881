package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	v := DefaultValidator()

	cases := []struct {
		name  string
		size  int64
		valid bool
	}{
		{"paper.pdf", 1024, true},
		{"notes.txt", 1, true},
		{"slides.docx", 5 << 20, true},
		{"page.html", 100, true},
		{"image.png", 1024, false},
		{"archive.zip", 1024, false},
		{"no-extension", 1024, false},
		{"empty.pdf", 0, false},
		{"huge.pdf", DefaultMaxSize + 1, false},
	}

	for _, tc := range cases {
		got := v.Validate(tc.name, tc.size)
		if got.Valid != tc.valid {
			t.Errorf("Validate(%q, %d) = %+v, want valid=%v", tc.name, tc.size, got, tc.valid)
		}
		if !got.Valid && got.Error == "" {
			t.Errorf("invalid result for %q should carry an error message", tc.name)
		}
	}
}

func TestValidateFileMissing(t *testing.T) {
	v := DefaultValidator()
	got := v.ValidateFile("/nonexistent/file.pdf")
	if got.Valid {
		t.Error("missing file should be invalid")
	}
}

func TestValidateFileDirectory(t *testing.T) {
	v := DefaultValidator()
	got := v.ValidateFile(t.TempDir())
	if got.Valid {
		t.Error("directory should be invalid")
	}
}

func TestValidatorCustomLimits(t *testing.T) {
	v := NewValidator(100, []string{".txt"})
	if got := v.Validate("a.pdf", 50); got.Valid {
		t.Error("extension outside whitelist should be rejected")
	}
	if got := v.Validate("a.txt", 101); got.Valid {
		t.Error("size above custom cap should be rejected")
	}
	if got := v.Validate("a.txt", 100); !got.Valid {
		t.Error("size at cap should be accepted")
	}
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	content := "Plain text survives extraction untouched."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewFileExtractor()
	got, err := e.ExtractFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if got.Text != content {
		t.Errorf("unexpected text: %q", got.Text)
	}
	if got.Bytes != int64(len(content)) {
		t.Errorf("expected %d bytes, got %d", len(content), got.Bytes)
	}
}

func TestExtractHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	content := `<html><head><style>p{color:red}</style><script>var x=1;</script></head>` +
		`<body><p>First paragraph here.</p><p>Second paragraph here.</p></body></html>`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewFileExtractor()
	got, err := e.ExtractFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	if !strings.Contains(got.Text, "First paragraph here.") ||
		!strings.Contains(got.Text, "Second paragraph here.") {
		t.Errorf("paragraph text missing from %q", got.Text)
	}
	if strings.Contains(got.Text, "color:red") || strings.Contains(got.Text, "var x") {
		t.Errorf("style/script content must be skipped, got %q", got.Text)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewFileExtractor()
	if _, err := e.ExtractFile(context.Background(), path); err == nil {
		t.Error("unsupported extension should error")
	}
}

func TestExtractCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewFileExtractor()
	if _, err := e.ExtractFile(ctx, "whatever.txt"); err == nil {
		t.Error("cancelled context should error")
	}
}

func TestPagesFromMeta(t *testing.T) {
	if got := pagesFromMeta(map[string]string{"PageCount": "12"}); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
	if got := pagesFromMeta(map[string]string{"Pages": " 3 "}); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := pagesFromMeta(nil); got != 0 {
		t.Errorf("expected 0 for missing metadata, got %d", got)
	}
}
