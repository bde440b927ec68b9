package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// ErrNoPages is returned for a document without any pages
var ErrNoPages = errors.New("document has no pages")

// Extractor turns a document into a single plain-text stream in reading order
type Extractor interface {
	Extract(path string) (string, error)
}

// PDFExtractor extracts page text with github.com/ledongthuc/pdf
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract concatenates the plain text of every page, each followed by a newline
func (e *PDFExtractor) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", ErrNoPages
	}

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return Join(pages), nil
}

// Join concatenates page texts, terminating each page with a newline, and
// normalizes the result to NFC so decomposed Hangul matches the marker patterns
func Join(pages []string) string {
	var sb strings.Builder
	for _, p := range pages {
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return Normalize(sb.String())
}

// Normalize returns s in Unicode normalization form C
func Normalize(s string) string {
	return norm.NFC.String(s)
}
