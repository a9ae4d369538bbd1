package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts text from PDF documents.
type PDFExtractor struct{}

var _ Extractor = (*PDFExtractor)(nil)

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText implements Extractor for PDF bytes. The underlying parser
// panics on some malformed inputs; panics are converted into
// ErrMalformedDocument so one bad file never aborts a search worker.
func (e *PDFExtractor) ExtractText(data []byte) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("%w: parser panic: %v", ErrMalformedDocument, r)
		}
	}()

	reader, rerr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if rerr != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedDocument, rerr)
	}

	pages := reader.NumPage()
	if pages <= 0 {
		return "", ErrNoText
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		// Page-level failures lose that page only.
		func() {
			defer func() { _ = recover() }()
			page := reader.Page(i)
			if page.V.IsNull() {
				return
			}
			content := page.Content()
			for _, item := range content.Text {
				b.WriteString(item.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}()
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
