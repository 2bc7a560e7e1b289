package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page is one page of extracted document text.
// Number is 1-based and follows the source page numbering, so a page whose
// content was empty still consumes its number (pages are dropped, not
// renumbered).
type Page struct {
	Number  int
	Title   string // Optional; empty when the source carries no page title
	Content string // Normalized text: whitespace runs collapsed, ends trimmed
}

// Document is the extraction result for one input file.
type Document struct {
	Filename string
	Pages    []Page
}

// pageText is the raw per-page output of the PDF reader before normalization.
type pageText struct {
	title string
	text  string
}

// Extract reads a PDF file and returns its text content as ordered pages.
// Pages whose content is empty after normalization are excluded from the
// result. Unreadable or malformed input fails the whole document; no
// partial-document results are returned.
func Extract(path string) (Document, error) {
	filename := filepath.Base(path)

	f, reader, err := pdf.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open pdf %s: %w", filename, err)
	}
	defer func() {
		_ = f.Close()
	}()

	numPages := reader.NumPage()
	raw := make([]pageText, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			// Missing page object; keep the slot so numbering stays aligned
			raw = append(raw, pageText{})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return Document{}, fmt.Errorf("failed to extract page %d of %s: %w", i, filename, err)
		}

		raw = append(raw, pageText{text: text})
	}

	return buildDocument(filename, raw), nil
}

// buildDocument assembles a Document from raw page texts. It normalizes each
// page's content and drops pages that are empty after normalization. Pure
// function, separated from Extract so it can be tested without PDF fixtures.
func buildDocument(filename string, raw []pageText) Document {
	doc := Document{Filename: filename}

	for i, page := range raw {
		content := normalizeText(page.text)
		if content == "" {
			continue
		}

		doc.Pages = append(doc.Pages, Page{
			Number:  i + 1,
			Title:   page.title,
			Content: content,
		})
	}

	return doc
}

// normalizeText collapses runs of whitespace and newlines to single spaces
// and trims both ends.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
