package document

import "testing"

func TestBuildMetadata_Counts(t *testing.T) {
	md := BuildMetadata("one two three\nfour five", 2)
	if md.WordCount != 5 {
		t.Fatalf("word count: %d", md.WordCount)
	}
	if md.LineCount != 2 {
		t.Fatalf("line count: %d", md.LineCount)
	}
	if md.PageCount != 2 {
		t.Fatalf("page count: %d", md.PageCount)
	}
}

func TestBuildMetadata_DefaultPageCount(t *testing.T) {
	md := BuildMetadata("text", 0)
	if md.PageCount != 1 {
		t.Fatalf("expected page count 1, got %d", md.PageCount)
	}
}

func TestBuildMetadata_Empty(t *testing.T) {
	md := BuildMetadata("", 0)
	if md.WordCount != 0 || md.LineCount != 0 {
		t.Fatalf("expected zero counts: %+v", md)
	}
	if md.Language != LanguageUnknown {
		t.Fatalf("expected unknown language, got %q", md.Language)
	}
}

func TestBuildMetadata_Sections(t *testing.T) {
	text := "Professional Experience\nAcme Corp\n\nEducation\nBSc\n\nTechnical Skills\nGo"
	md := BuildMetadata(text, 1)
	for _, name := range []string{"experience", "education", "skills"} {
		if !md.Sections[name] {
			t.Fatalf("section %q not detected", name)
		}
	}
	if md.Sections["projects"] {
		t.Fatalf("projects falsely detected")
	}
}

func TestBuildMetadata_LanguageDetection(t *testing.T) {
	text := "Experienced software engineer with a strong background in building " +
		"distributed systems and leading development teams across multiple projects."
	md := BuildMetadata(text, 1)
	if md.Language != "eng" {
		t.Fatalf("expected eng, got %q", md.Language)
	}
}
