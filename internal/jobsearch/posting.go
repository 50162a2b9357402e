package jobsearch

import (
	"fmt"
	"strings"
)

// Posting is one job offer in the shape the boundaries render. Immutable
// once scored; rescoring against another skill list produces the same
// posting with a different MatchScore.
type Posting struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Remote       bool   `json:"remote"`
	Salary       string `json:"salary"`
	URL          string `json:"url"`
	Requirements string `json:"requirements"`
	MatchScore   int    `json:"match_score"`
}

const (
	locationNotSpecified = "Не указан"
	salaryNotSpecified   = "Не указана"
	defaultCurrency      = "RUB"
)

// formatSalary renders a salary range the way hh.ru reports it: either
// bound may be missing.
func formatSalary(from, to int, currency string) string {
	if currency == "" {
		currency = defaultCurrency
	}

	switch {
	case from > 0 && to > 0:
		return fmt.Sprintf("%s - %s %s", groupDigits(from), groupDigits(to), currency)
	case from > 0:
		return fmt.Sprintf("от %s %s", groupDigits(from), currency)
	case to > 0:
		return fmt.Sprintf("до %s %s", groupDigits(to), currency)
	}

	return salaryNotSpecified
}

// groupDigits inserts thousands separators: 150000 -> "150,000".
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}

	return s + "," + strings.Join(parts, ",")
}

// isRemote reports whether the posting title mentions remote work in either
// locale.
func isRemote(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "удаленно") || strings.Contains(lower, "remote")
}
