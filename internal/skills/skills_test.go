package skills

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractFindsWholeWordsOnly(t *testing.T) {
	e := New()

	got := e.Extract("I have 3 years of experience with Python and Docker")

	if !contains(got, "Python") {
		t.Fatalf("expected Python in %v", got)
	}
	if !contains(got, "Docker") {
		t.Fatalf("expected Docker in %v", got)
	}
	if !contains(got, "Опыт: 3 лет") {
		t.Fatalf("expected experience entry in %v", got)
	}
}

func TestExtractJavaDoesNotMatchInsideJavaScript(t *testing.T) {
	e := New()

	got := e.Extract("Пишу на javascript уже давно")

	if contains(got, "Java") {
		t.Fatalf("java must not match inside javascript: %v", got)
	}
	if !contains(got, "JavaScript") {
		t.Fatalf("expected JavaScript in %v", got)
	}
}

func TestExtractPunctuationTerms(t *testing.T) {
	e := New()

	got := e.Extract("Владею c++ и c#, использую node.js")

	for _, want := range []string{"C++", "C#", "Node.js"} {
		if !contains(got, want) {
			t.Fatalf("expected %s in %v", want, got)
		}
	}
}

func TestExtractMultiWordPhrases(t *testing.T) {
	e := New()

	got := e.Extract("отчеты в power bi, дашборды в google analytics")

	if !contains(got, "Power BI") {
		t.Fatalf("expected Power BI in %v", got)
	}
	if !contains(got, "Google Analytics") {
		t.Fatalf("expected Google Analytics in %v", got)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	e := New()
	text := "Python, Docker, Kubernetes, опыт работы 5 лет, SQL и git"

	first := e.Extract(text)
	second := e.Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
}

func TestExtractOrdersByLengthDescending(t *testing.T) {
	e := New()

	got := e.Extract("git, kubernetes, sql")

	want := []string{"Kubernetes", "Git", "SQL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractEmptyTextYieldsEmptyList(t *testing.T) {
	if got := New().Extract(""); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"years of experience", "5 лет опыта в разработке", "Опыт: 5 лет"},
		{"experience of work", "опыт работы 3 года", "Опыт: 3 лет"},
		{"experience with stazh", "стаж 10 лет", "Опыт: 10 лет"},
		{"multiple distinct sorted", "стаж 10 лет, а также 3 года опыта", "Опыт: 3, 10 лет"},
		{"duplicates collapse", "3 года опыта и еще раз 3 года опыта", "Опыт: 3 лет"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New().Extract(tt.text)
			if !contains(got, tt.want) {
				t.Fatalf("expected %q in %v", tt.want, got)
			}
		})
	}
}

func TestExperienceRejectsUnreasonableYears(t *testing.T) {
	got := New().Extract("стаж 100 лет и телефон 79261234567")

	for _, label := range got {
		if strings.HasPrefix(label, "Опыт:") {
			t.Fatalf("did not expect experience entry, got %v", got)
		}
	}
}

func TestExtractDeduplicatesCaseInsensitively(t *testing.T) {
	e := NewWithVocabulary([]Term{
		{Match: "python", Label: "Python"},
		{Match: "python3", Label: "PYTHON"},
	})

	got := e.Extract("python and python3")

	if len(got) != 1 {
		t.Fatalf("expected one label after dedupe, got %v", got)
	}
}

func TestExtractCustomVocabulary(t *testing.T) {
	e := NewWithVocabulary([]Term{{Match: "zig", Label: "Zig"}})

	got := e.Extract("learning zig this year")

	if !reflect.DeepEqual(got, []string{"Zig"}) {
		t.Fatalf("expected [Zig], got %v", got)
	}
}

func contains(labels []string, want string) bool {
	for _, label := range labels {
		if label == want {
			return true
		}
	}
	return false
}
