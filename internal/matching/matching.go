// Package matching computes how well a skill set fits a job posting.
package matching

import (
	"math"
	"strings"
)

// maxCountedSkills caps the denominator so resumes with many skills are not
// penalized relative to shorter ones.
const maxCountedSkills = 10

// CombineFields joins posting text fields into the single lower-cased
// haystack the scorer searches.
func CombineFields(fields ...string) string {
	return strings.ToLower(strings.Join(fields, " "))
}

// Score returns a 0-100 relevance score for the user's skills against the
// combined posting text. Skills are matched as plain substrings, which is
// deliberately looser than the word-bounded rule used during extraction.
func Score(userSkills []string, jobText string) int {
	denominator := len(userSkills)
	if denominator > maxCountedSkills {
		denominator = maxCountedSkills
	}
	if denominator == 0 {
		return 0
	}

	haystack := strings.ToLower(jobText)
	matches := 0
	for _, skill := range userSkills {
		if strings.Contains(haystack, strings.ToLower(skill)) {
			matches++
		}
	}

	score := int(math.Round(float64(matches) / float64(denominator) * 100))
	if score > 100 {
		score = 100
	}

	return score
}
