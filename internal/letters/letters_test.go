package letters

import (
	"context"
	"strings"
	"testing"

	"github.com/c4soto/resumemate/internal/jobsearch"
)

func TestTemplateGeneratorSubstitutesPosting(t *testing.T) {
	g := NewTemplateGenerator()
	posting := &jobsearch.Posting{Title: "Senior Python Developer", Company: "TechCorp Inc."}

	letter, err := g.Generate(context.Background(), "resume text", []string{"Python", "Docker"}, posting)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(letter, "Senior Python Developer") {
		t.Fatalf("expected posting title in letter:\n%s", letter)
	}
	if !strings.Contains(letter, "TechCorp Inc.") {
		t.Fatalf("expected company in letter:\n%s", letter)
	}
	if !strings.Contains(letter, "• Python") || !strings.Contains(letter, "• Docker") {
		t.Fatalf("expected skills in letter:\n%s", letter)
	}
}

func TestTemplateGeneratorWithoutSkills(t *testing.T) {
	g := NewTemplateGenerator()
	posting := &jobsearch.Posting{Title: "Developer", Company: "Acme"}

	letter, err := g.Generate(context.Background(), "", nil, posting)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(letter, "• Ключевые навыки перечислены в резюме") {
		t.Fatalf("expected placeholder skills line:\n%s", letter)
	}
}

func TestTemplateGeneratorRequiresPosting(t *testing.T) {
	g := NewTemplateGenerator()

	if _, err := g.Generate(context.Background(), "", nil, nil); err == nil {
		t.Fatalf("expected error for nil posting")
	}
}

func TestGeminiGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), "  ", "", nil); err == nil {
		t.Fatalf("expected error for empty api key")
	}
}
