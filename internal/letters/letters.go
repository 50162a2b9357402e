// Package letters generates cover letters for job postings.
package letters

import (
	"context"
	"fmt"
	"strings"

	"github.com/c4soto/resumemate/internal/jobsearch"
)

// Generator drafts a cover letter for one posting. Implementations are
// selected at wiring time by credential presence: with a Gemini API key the
// AI generator is used, otherwise the static template.
type Generator interface {
	Generate(ctx context.Context, resumeText string, skills []string, posting *jobsearch.Posting) (string, error)
}

// TemplateGenerator renders a fixed letter with the posting details and the
// extracted skills substituted in.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(_ context.Context, _ string, skills []string, posting *jobsearch.Posting) (string, error) {
	if posting == nil {
		return "", fmt.Errorf("posting is required")
	}

	skillsBlock := "• Ключевые навыки перечислены в резюме"
	if len(skills) > 0 {
		skillsBlock = "• " + strings.Join(skills, "\n• ")
	}

	letter := fmt.Sprintf(`Уважаемые коллеги!

Меня заинтересовала вакансия %s в компании %s.

На основе моего опыта и навыков, я уверен, что могу внести значительный вклад в вашу команду.
Ключевые навыки, релевантные для этой позиции:
%s

Готов обсудить детали сотрудничества и ответить на все интересующие вопросы.

С уважением,
[Ваше имя]
`, posting.Title, posting.Company, skillsBlock)

	return letter, nil
}
