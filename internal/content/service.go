package content

import (
	"context"
	"fmt"

	"github.com/abhisek/curiolab/internal/llm"
)

// Service generates grade-appropriate articles.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an article generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces an article for the given topic, dimension and grade.
// Inputs are validated here so every caller gets the same gatekeeping:
// topic length and appropriateness, grade range.
func (s *Service) Generate(ctx context.Context, topic, dimension string, grade int) (*Article, error) {
	if err := ValidateTopic(topic); err != nil {
		return nil, err
	}
	if err := ValidateGrade(grade); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "article")

	req := llm.Request{
		System: buildArticleSystemPrompt(topic, dimension, grade),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildArticleUserMessage(topic, dimension, grade)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("article generation: %w", err)
	}

	text := resp.Text()

	return &Article{
		Topic:            topic,
		Dimension:        dimension,
		GradeLevel:       grade,
		Content:          text,
		ReadabilityScore: FleschReadingEase(text),
		WordCount:        WordCount(text),
		Images:           ImagesForTopic(topic, s.cfg.ImageCount),
	}, nil
}
