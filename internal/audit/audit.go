// Package audit scores how ready a resume is for the job market.
package audit

import (
	"strings"
	"unicode/utf8"
)

const baseScore = 50

// sectionKeywords are the resume sections the scorer expects to see.
// Matched as plain substrings, not whole words.
var sectionKeywords = []string{"опыт", "образование", "навыки", "контакты"}

// Report is the result of a readiness audit. Computed fresh on every call,
// never persisted.
type Report struct {
	OverallScore    int      `json:"overall_score"`
	Grade           string   `json:"grade"`
	Recommendations []string `json:"recommendations"`
	SkillsCount     int      `json:"skills_count"`
	TextLength      int      `json:"text_length"`
}

// Audit derives a 0-100 readiness score, a letter grade and a list of
// improvement suggestions from the resume text and its extracted skills.
func Audit(text string, skills []string) Report {
	length := utf8.RuneCountInString(text)
	total := score(text, length, len(skills))

	return Report{
		OverallScore:    total,
		Grade:           grade(total),
		Recommendations: recommendations(text, length, len(skills)),
		SkillsCount:     len(skills),
		TextLength:      length,
	}
}

func score(text string, length, skillCount int) int {
	total := baseScore

	switch {
	case length > 1000:
		total += 15
	case length > 500:
		total += 10
	}

	switch {
	case skillCount >= 10:
		total += 20
	case skillCount >= 5:
		total += 10
	}

	lower := strings.ToLower(text)
	for _, section := range sectionKeywords {
		if strings.Contains(lower, section) {
			total += 3
		}
	}

	if total > 100 {
		total = 100
	}

	return total
}

// grade maps a score to a letter with inclusive lower bounds.
func grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "E"
	}
}

// recommendations evaluates each condition independently, in a fixed order.
// When nothing triggers, a single confirmation message is returned.
func recommendations(text string, length, skillCount int) []string {
	lower := strings.ToLower(text)
	var result []string

	if length < 500 {
		result = append(result, "📝 Добавьте больше деталей в описание опыта работы")
	}
	if skillCount < 5 {
		result = append(result, "🎯 Укажите больше технических навыков")
	}
	if !strings.Contains(lower, "опыт") {
		result = append(result, "💼 Добавьте раздел с опытом работы")
	}
	if !strings.Contains(lower, "образование") {
		result = append(result, "🎓 Добавьте информацию об образовании")
	}
	if !strings.Contains(lower, "контакт") {
		result = append(result, "📞 Укажите контактную информацию")
	}

	if len(result) == 0 {
		result = append(result, "✅ Резюме выглядит хорошо!")
	}

	return result
}
