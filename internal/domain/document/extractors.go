package document

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// pdfStrategy is one attempt at pulling text out of a PDF. Strategies are
// evaluated in priority order; the first one returning non-empty text wins.
type pdfStrategy struct {
	name    string
	extract func(data []byte) (text string, pages int, err error)
}

var pdfStrategies = []pdfStrategy{
	{name: "pdf-pages", extract: extractPDFPages},
	{name: "pdf-stream", extract: extractPDFStream},
}

// extractPDFPages walks the document page by page. Pages that fail to decode
// are skipped rather than failing the whole document.
func extractPDFPages(data []byte) (string, int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	pages := r.NumPage()
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), pages, nil
}

// extractPDFStream reads the whole document as one plain-text stream. Used as
// the fallback when per-page decoding produces nothing.
func extractPDFStream(data []byte) (string, int, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("read pdf: %w", err)
	}

	rs, err := r.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("pdf plain text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", 0, fmt.Errorf("pdf plain text: %w", err)
	}
	return buf.String(), r.NumPage(), nil
}

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

// extractDOCX is a single-path extraction; the format is structured enough
// that no fallback chain is needed.
func extractDOCX(data []byte) (string, error) {
	d, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer d.Close()

	content := d.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = docxTagRe.ReplaceAllString(content, " ")
	return content, nil
}

// extractPlainText decodes UTF-8, falling back to Latin-1 when the bytes are
// not valid UTF-8.
func extractPlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}
