package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	dslipak "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"
)

// Compile-time interface checks.
var _ Strategy = (*StructuredPDF)(nil)
var _ Strategy = (*PlainPDF)(nil)

// StructuredPDF extracts text page by page with ledongthuc/pdf,
// concatenating per-page text with newline separators. Pages that fail to
// decode or contain no text are skipped.
type StructuredPDF struct{}

// NewStructuredPDF creates the page-by-page PDF strategy.
func NewStructuredPDF() *StructuredPDF { return &StructuredPDF{} }

func (*StructuredPDF) Name() string { return "pdf-structured" }

// Extract extracts plain text from a PDF document.
func (*StructuredPDF) Extract(content []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	if len(content) == 0 {
		return "", fmt.Errorf("empty PDF content")
	}
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

// PlainPDF extracts the whole document's plain text in one pass with
// dslipak/pdf. Simpler than StructuredPDF and occasionally succeeds where
// the page-wise reader does not.
type PlainPDF struct{}

// NewPlainPDF creates the whole-document PDF strategy.
func NewPlainPDF() *PlainPDF { return &PlainPDF{} }

func (*PlainPDF) Name() string { return "pdf-plain" }

// Extract extracts plain text from a PDF document.
func (*PlainPDF) Extract(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	if len(content) == 0 {
		return "", fmt.Errorf("empty PDF content")
	}
	r, err := dslipak.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
