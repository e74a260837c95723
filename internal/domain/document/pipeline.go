package document

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

const (
	ContentTypePDF   = "application/pdf"
	ContentTypeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypePlain = "text/plain"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmptyDocument     = errors.New("document is empty")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrDocumentTooLarge  = errors.New("document exceeds size limit")
)

// Input is a raw document handed over by the upload boundary.
type Input struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Result is the outcome of a successful extraction pass. Errors holds
// non-fatal strategy failures that were recovered by a fallback.
type Result struct {
	Text     string      `json:"text"`
	Metadata Metadata    `json:"metadata"`
	Contact  ContactInfo `json:"contact_info"`
	Errors   []string    `json:"extraction_errors,omitempty"`
}

type Limits struct {
	// MaxBytes is an advisory size bound; documents over it fail fast with
	// ErrDocumentTooLarge instead of being parsed.
	MaxBytes int64
}

const DefaultMaxBytes = 10 << 20

// Pipeline converts an uploaded document into normalized text plus metadata
// and contact fields. It is stateless and safe for concurrent use.
type Pipeline struct {
	limits Limits
	logger *log.Logger
}

func NewPipeline(limits Limits, logger *log.Logger) *Pipeline {
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = DefaultMaxBytes
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{limits: limits, logger: logger}
}

func (p *Pipeline) Extract(in Input) (Result, error) {
	if len(in.Data) == 0 {
		return Result{}, ErrEmptyDocument
	}
	if int64(len(in.Data)) > p.limits.MaxBytes {
		return Result{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrDocumentTooLarge, len(in.Data), p.limits.MaxBytes)
	}

	var (
		raw      string
		pages    int
		warnings []string
		err      error
	)

	switch normalizeContentType(in.ContentType) {
	case ContentTypePDF:
		raw, pages, warnings, err = p.extractPDF(in.Data)
	case ContentTypeDOCX:
		raw, err = extractDOCX(in.Data)
	case ContentTypePlain:
		raw = extractPlainText(in.Data)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, in.ContentType)
	}
	if err != nil {
		return Result{}, err
	}

	text := Normalize(raw)
	if text == "" {
		return Result{}, fmt.Errorf("%w: no text content", ErrEmptyDocument)
	}

	return Result{
		Text:     text,
		Metadata: BuildMetadata(text, pages),
		Contact:  ExtractContact(text),
		Errors:   warnings,
	}, nil
}

// extractPDF runs the strategy chain: each strategy either succeeds with
// non-empty text or its failure is recorded and the next one is tried. When
// every strategy fails the last error is surfaced, never a silent partial
// result.
func (p *Pipeline) extractPDF(data []byte) (string, int, []string, error) {
	var (
		warnings []string
		lastErr  error
	)

	for _, s := range pdfStrategies {
		text, pages, err := s.extract(data)
		if err != nil {
			lastErr = err
			warnings = append(warnings, fmt.Sprintf("%s: %v", s.name, err))
			p.logger.Printf("[Extract] PDF strategy %s failed: %v", s.name, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			lastErr = fmt.Errorf("%s produced no text", s.name)
			warnings = append(warnings, lastErr.Error())
			continue
		}
		return text, pages, warnings, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no extraction strategy available")
	}
	return "", 0, nil, fmt.Errorf("%w: %v", ErrExtractionFailed, lastErr)
}

func normalizeContentType(ct string) string {
	ct = strings.TrimSpace(strings.ToLower(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
