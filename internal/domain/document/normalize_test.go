package document

import (
	"strings"
	"testing"
)

func TestNormalize_Whitespace(t *testing.T) {
	in := "John  Doe\r\nSoftware   Engineer\r\n\r\n\r\n\r\nSkills:\tGo,  Python"
	want := "John Doe\nSoftware Engineer\n\nSkills: Go, Python"
	if got := Normalize(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalize_StripsControlAndArtifacts(t *testing.T) {
	in := "Summary\x00\x01 text\n Page 2 of 3 \nExperience"
	got := Normalize(in)
	if strings.Contains(got, "\x00") || strings.Contains(got, "\x01") {
		t.Fatalf("control characters survived: %q", got)
	}
	if strings.Contains(got, "Page 2 of 3") {
		t.Fatalf("page artifact survived: %q", got)
	}
}

func TestNormalize_FormFeedBecomesNewline(t *testing.T) {
	got := Normalize("page one\fpage two")
	if got != "page one\npage two" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a\r\n\r\n\r\nb\t\tc d",
		"  leading and trailing  \n\n\n\n",
		"Page 1 of 2\ncontent\x7f here",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize("   \n\t\n  "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
