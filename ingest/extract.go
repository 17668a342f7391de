// Package ingest turns uploaded documents into raw text for analysis.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrEmptyDocument = errors.New("document appears to be empty")
	ErrUnreadablePDF = errors.New("failed to extract text from PDF")
)

// ExtractText reads an uploaded document and returns its raw text. PDFs
// are parsed page by page; everything else is treated as plain text.
// Empty documents and unreadable PDFs are explicit errors surfaced to the
// caller, never handled downstream.
func ExtractText(filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return extractPDFText(data)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		// Image-based PDFs parse fine but carry no extractable text
		return "", ErrEmptyDocument
	}
	return text, nil
}
