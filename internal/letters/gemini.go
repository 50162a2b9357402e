package letters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/c4soto/resumemate/internal/jobsearch"
)

const defaultModel = "gemini-2.5-flash"

const promptTemplate = `Ты помощник по поиску работы. Напиши короткое сопроводительное письмо на русском языке для отклика на вакансию.

Вакансия: %s
Компания: %s
Требования: %s

Навыки кандидата: %s

Текст резюме:
%s

Ответь только текстом письма, без пояснений.`

// GeminiGenerator drafts letters with the Gemini API, falling back to the
// template when the model call fails or returns nothing usable.
type GeminiGenerator struct {
	client    *genai.Client
	modelName string
	fallback  *TemplateGenerator
	logger    *zap.Logger
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &GeminiGenerator{
		client:    client,
		modelName: model,
		fallback:  NewTemplateGenerator(),
		logger:    logger,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, resumeText string, skills []string, posting *jobsearch.Posting) (string, error) {
	if posting == nil {
		return "", fmt.Errorf("posting is required")
	}

	prompt := fmt.Sprintf(promptTemplate,
		posting.Title,
		posting.Company,
		posting.Requirements,
		strings.Join(skills, ", "),
		resumeText,
	)

	letter, err := g.generateContent(ctx, prompt)
	if err != nil {
		g.logger.Warn("gemini generation failed, falling back to template",
			zap.String("model", g.modelName),
			zap.Error(err),
		)
		return g.fallback.Generate(ctx, resumeText, skills, posting)
	}

	return letter, nil
}

func (g *GeminiGenerator) generateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}
