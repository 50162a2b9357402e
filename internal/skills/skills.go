// Package skills extracts a normalized skill list from resume text by
// matching it against a fixed vocabulary and experience-duration patterns.
package skills

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// experiencePatterns recognize "N лет опыта" style phrases in both locales
// resumes arrive in. The captured group is the number of years.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:год|года|лет)\s*(?:опыта|стажа)`),
	regexp.MustCompile(`опыт\s*(?:работы\s*)?(\d+)\s*(?:год|года|лет)`),
	regexp.MustCompile(`стаж\s*(\d+)\s*(?:год|года|лет)`),
	regexp.MustCompile(`(\d+)\s*years?\s*of\s*experience`),
	regexp.MustCompile(`experience\s*(?:of\s*)?(\d+)\s*years?`),
}

const (
	// Years outside this range are treated as noise (phone numbers, dates).
	minExperienceYears = 1
	maxExperienceYears = 50
)

type vocabularyEntry struct {
	label   string
	pattern *regexp.Regexp
}

// Extractor matches text against a vocabulary table.
type Extractor struct {
	entries []vocabularyEntry
}

// New returns an Extractor over the default vocabulary.
func New() *Extractor {
	return NewWithVocabulary(DefaultVocabulary())
}

// NewWithVocabulary returns an Extractor over the given table.
func NewWithVocabulary(vocabulary []Term) *Extractor {
	entries := make([]vocabularyEntry, 0, len(vocabulary))
	for _, term := range vocabulary {
		entries = append(entries, vocabularyEntry{
			label:   term.Label,
			pattern: compileTerm(term.Match),
		})
	}

	return &Extractor{entries: entries}
}

// compileTerm builds a whole-phrase pattern for one lower-case term.
// RE2 has no lookarounds and `\b` does not understand terms ending in
// punctuation ("c++", "c#"), so boundaries are explicit character classes:
// the term must not be adjacent to a letter, digit or underscore.
func compileTerm(term string) *regexp.Regexp {
	const boundary = `[^\p{L}\p{N}_]`
	return regexp.MustCompile(`(?:\A|` + boundary + `)` + regexp.QuoteMeta(term) + `(?:` + boundary + `|\z)`)
}

// Extract returns the distinct skill labels found in text, longest label
// first, plus one synthesized experience entry when duration phrases are
// present. Empty text yields an empty list.
func (e *Extractor) Extract(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, entry := range e.entries {
		if entry.pattern.MatchString(lower) {
			found = append(found, entry.label)
		}
	}

	if experience := experienceEntry(lower); experience != "" {
		found = append(found, experience)
	}

	return ordered(dedupe(found))
}

// experienceEntry collects every plausible years-of-experience value into a
// single pseudo-skill, e.g. "Опыт: 3, 5 лет". Returns "" when none match.
func experienceEntry(lower string) string {
	seen := make(map[int]bool)
	var years []int

	for _, pattern := range experiencePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			value, err := strconv.Atoi(match[1])
			if err != nil || value < minExperienceYears || value > maxExperienceYears {
				continue
			}
			if !seen[value] {
				seen[value] = true
				years = append(years, value)
			}
		}
	}

	if len(years) == 0 {
		return ""
	}

	sort.Ints(years)
	parts := make([]string, 0, len(years))
	for _, value := range years {
		parts = append(parts, strconv.Itoa(value))
	}

	return fmt.Sprintf("Опыт: %s лет", strings.Join(parts, ", "))
}

func dedupe(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		key := strings.ToLower(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, label)
	}
	return result
}

// ordered sorts labels by display length descending. The tie-break is
// lexicographic so identical inputs always produce identical output.
func ordered(labels []string) []string {
	sort.SliceStable(labels, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(labels[i]), utf8.RuneCountInString(labels[j])
		if li != lj {
			return li > lj
		}
		return labels[i] < labels[j]
	})
	return labels
}
