package document

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExtract_UnsupportedFormat(t *testing.T) {
	p := NewPipeline(Limits{}, nil)
	_, err := p.Extract(Input{Data: []byte("hello"), ContentType: "image/png"})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	p := NewPipeline(Limits{}, nil)
	_, err := p.Extract(Input{Data: nil, ContentType: ContentTypePlain})
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestExtract_WhitespaceOnlyDocument(t *testing.T) {
	p := NewPipeline(Limits{}, nil)
	_, err := p.Extract(Input{Data: []byte("   \n\t  "), ContentType: ContentTypePlain})
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestExtract_SizeLimit(t *testing.T) {
	p := NewPipeline(Limits{MaxBytes: 16}, nil)
	_, err := p.Extract(Input{Data: bytes.Repeat([]byte("a"), 17), ContentType: ContentTypePlain})
	if !errors.Is(err, ErrDocumentTooLarge) {
		t.Fatalf("expected ErrDocumentTooLarge, got %v", err)
	}
}

func TestExtract_PlainText(t *testing.T) {
	p := NewPipeline(Limits{}, nil)
	res, err := p.Extract(Input{
		Data:        []byte("Jane Doe\njane@example.com\n\nSkills\nGo, PostgreSQL"),
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(res.Text, "Jane Doe") {
		t.Fatalf("text missing content: %q", res.Text)
	}
	if res.Contact.Email == nil || res.Contact.Email.Value != "jane@example.com" {
		t.Fatalf("email not extracted: %+v", res.Contact.Email)
	}
	if res.Metadata.WordCount == 0 {
		t.Fatalf("expected non-zero word count")
	}
	if !res.Metadata.Sections["skills"] {
		t.Fatalf("skills section not detected: %+v", res.Metadata.Sections)
	}
}

func TestExtract_PlainTextLatin1Fallback(t *testing.T) {
	p := NewPipeline(Limits{}, nil)
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
	res, err := p.Extract(Input{Data: []byte{'r', 0xE9, 's', 'u', 'm', 0xE9}, ContentType: ContentTypePlain})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Text != "résumé" {
		t.Fatalf("got %q", res.Text)
	}
}

func TestExtract_CorruptPDF(t *testing.T) {
	p := NewPipeline(Limits{}, nil)
	_, err := p.Extract(Input{Data: []byte("not a pdf at all"), ContentType: ContentTypePDF})
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestNormalizeContentType(t *testing.T) {
	cases := map[string]string{
		"Application/PDF":           ContentTypePDF,
		"text/plain; charset=utf-8": ContentTypePlain,
		"  text/plain ":             ContentTypePlain,
		"application/octet-stream":  "application/octet-stream",
	}
	for in, want := range cases {
		if got := normalizeContentType(in); got != want {
			t.Fatalf("normalizeContentType(%q) = %q, want %q", in, got, want)
		}
	}
}
