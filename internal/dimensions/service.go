package dimensions

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/curiolab/internal/llm"
)

// Fallback is served whenever the model fails or ignores the format.
// The lenses are generic on purpose so any topic still gets a usable set.
var Fallback = []string{"Science", "History", "Geography", "Culture", "Environment"}

// Count is the number of dimensions every topic gets.
const Count = 5

var dimensionsSchema = &llm.Schema{
	Name:        "topic-dimensions",
	Description: "Exactly five educational dimensions for exploring a topic",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"dimensions"},
		"properties": map[string]any{
			"dimensions": map[string]any{
				"type":     "array",
				"minItems": Count,
				"maxItems": Count,
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
					"maxLength": 40,
				},
			},
		},
	},
}

const systemPrompt = `You are an educational content expert who creates safe, age-appropriate content for children. For the given topic, generate exactly 5 educational dimensions that would be interesting and appropriate for young learners.

SAFETY REQUIREMENTS (CRITICAL):
- Content must be completely safe and appropriate for children ages 8-18
- NO violence, weapons, death, scary content, or disturbing themes
- NO inappropriate, sexual, or mature themes
- NO political controversy or divisive topics
- Focus on educational, positive, and inspiring aspects only
- If topic seems inappropriate, focus on safe educational angles only

CONTENT REQUIREMENTS:
- Return exactly 5 dimensions
- Each dimension should be 1-2 words (like "Science", "History", "Geography")
- Make them relevant to the topic
- Educational and age-appropriate for young learners
- Diverse perspectives on the topic`

// Service suggests the five lenses through which a topic can be explored.
type Service struct {
	provider llm.Provider
	log      *zap.Logger
}

// NewService creates a dimension suggestion service. A nil logger is
// replaced with a no-op logger.
func NewService(provider llm.Provider, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, log: log}
}

// Suggest returns exactly five dimensions for the topic. Provider errors
// and malformed output degrade to the fallback set rather than failing
// the caller. The error return is reserved for context cancellation.
func (s *Service) Suggest(ctx context.Context, topic string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "dimensions")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Generate 5 educational dimensions for: " + topic},
		},
		Schema:      dimensionsSchema,
		MaxTokens:   100,
		Temperature: 0.7,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.log.Warn("dimension generation failed, serving fallback",
			zap.String("topic", topic),
			zap.Error(err))
		return fallback(), nil
	}

	var out struct {
		Dimensions []string `json:"dimensions"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		s.log.Warn("dimension response not parseable, serving fallback",
			zap.String("topic", topic),
			zap.Error(err))
		return fallback(), nil
	}

	dims := clean(out.Dimensions)
	if len(dims) != Count {
		s.log.Warn("model ignored the format, serving fallback",
			zap.String("topic", topic),
			zap.Int("got", len(dims)))
		return fallback(), nil
	}
	return dims, nil
}

func clean(dims []string) []string {
	out := make([]string, 0, len(dims))
	for _, d := range dims {
		d = strings.TrimSpace(d)
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}

func fallback() []string {
	out := make([]string, len(Fallback))
	copy(out, Fallback)
	return out
}
