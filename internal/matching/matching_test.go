package matching

import "testing"

func TestScoreAllSkillsPresent(t *testing.T) {
	skills := []string{"Python", "Docker", "SQL"}
	text := CombineFields("Senior Python Developer", "Docker, SQL, опыт 3+ лет")

	if got := Score(skills, text); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScoreNoSkillsPresent(t *testing.T) {
	skills := []string{"Rust", "Kotlin"}
	text := CombineFields("Accountant", "бухгалтерский учет")

	if got := Score(skills, text); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestScoreEmptySkillList(t *testing.T) {
	if got := Score(nil, "anything at all"); got != 0 {
		t.Fatalf("expected 0 for empty skill list, got %d", got)
	}
}

func TestScoreSubstringMatchIsIntentionallyLoose(t *testing.T) {
	// Unlike extraction, scoring matches anywhere in the text: "Java" in
	// "JavaScript" counts here.
	if got := Score([]string{"Java"}, "javascript developer"); got != 100 {
		t.Fatalf("expected substring match to count, got %d", got)
	}
}

func TestScoreDenominatorCappedAtTen(t *testing.T) {
	skills := make([]string, 30)
	for i := range skills {
		skills[i] = "nomatch"
	}
	skills[0] = "Python"

	// 1 match out of min(30, 10) = 10%.
	if got := Score(skills, "python shop"); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestScoreClampedAtHundred(t *testing.T) {
	skills := make([]string, 20)
	for i := range skills {
		skills[i] = "go"
	}

	if got := Score(skills, "go go go"); got != 100 {
		t.Fatalf("expected clamp at 100, got %d", got)
	}
}

func TestScoreRounds(t *testing.T) {
	skills := []string{"python", "docker", "sql"}

	// 1 of 3 -> 33.33 rounds to 33; 2 of 3 -> 66.67 rounds to 67.
	if got := Score(skills, "python"); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	if got := Score(skills, "python docker"); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}
