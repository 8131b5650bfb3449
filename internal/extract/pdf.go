package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrExtraction is returned when a document cannot be read as text.
var ErrExtraction = errors.New("document text extraction failed")

// TextExtractor turns a binary document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, r io.ReaderAt, size int64) (string, error)
}

// PDFExtractor reads the text layer of PDF documents page by page.
type PDFExtractor struct{}

// NewPDFExtractor returns a TextExtractor for PDF input.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText joins the plain text of every page with newlines. Scanned
// pages without a text layer contribute nothing.
func (e *PDFExtractor) ExtractText(ctx context.Context, r io.ReaderAt, size int64) (text string, err error) {
	// The PDF reader panics on some malformed object streams.
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrExtraction, p)
		}
	}()

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, i, err)
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}

// ExtractBytes is a convenience wrapper for in-memory documents.
func ExtractBytes(ctx context.Context, ex TextExtractor, data []byte) (string, error) {
	return ex.ExtractText(ctx, bytes.NewReader(data), int64(len(data)))
}
