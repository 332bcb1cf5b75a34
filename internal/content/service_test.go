package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/curiolab/internal/llm"
)

func TestGenerate_HappyPath(t *testing.T) {
	article := "Dragons are amazing. They appear in stories from many lands. Kids love to read about them."
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(article)},
	)
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Generate(context.Background(), "Dragons", "Science", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Content != article {
		t.Errorf("content mismatch: %q", got.Content)
	}
	if got.WordCount != 16 {
		t.Errorf("WordCount = %d, want 16", got.WordCount)
	}
	if got.ReadabilityScore <= 0 {
		t.Errorf("ReadabilityScore = %.1f, want positive", got.ReadabilityScore)
	}
	if len(got.Images) == 0 {
		t.Error("expected curated images for Dragons")
	}
	if got.Topic != "Dragons" || got.Dimension != "Science" || got.GradeLevel != 4 {
		t.Errorf("echo fields mismatch: %+v", got)
	}
}

func TestGenerate_PromptCarriesGradeGuidelines(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Space is big.")},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), "Space", "Science", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	sys := mock.Calls[0].System
	if !strings.Contains(sys, "200-300 words") {
		t.Errorf("grade 3 system prompt missing word target:\n%s", sys)
	}
	if !strings.Contains(sys, "GRADE LEVEL: 3") {
		t.Errorf("system prompt missing grade level:\n%s", sys)
	}
	if mock.Calls[0].Schema != nil {
		t.Error("article generation must not request structured output")
	}
}

func TestGenerate_RejectsInvalidInput(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.Generate(ctx, "x", "Science", 4); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("short topic error = %v, want ErrInvalidTopic", err)
	}
	if _, err := svc.Generate(ctx, "guns", "Science", 4); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("inappropriate topic error = %v, want ErrInvalidTopic", err)
	}
	if _, err := svc.Generate(ctx, "Dragons", "Science", 7); !errors.Is(err, ErrInvalidGrade) {
		t.Errorf("grade error = %v, want ErrInvalidGrade", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for invalid input, want 0", mock.CallCount())
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), "Dragons", "Science", 4); err == nil {
		t.Fatal("expected error when provider fails")
	}
}

func TestImagesForTopic(t *testing.T) {
	curated := ImagesForTopic("Dragons", 3)
	if len(curated) != 3 {
		t.Errorf("Dragons images = %d, want 3", len(curated))
	}

	capped := ImagesForTopic("dragons", 2)
	if len(capped) != 2 {
		t.Errorf("capped images = %d, want 2", len(capped))
	}

	generic := ImagesForTopic("Quasars", 3)
	if len(generic) != 2 {
		t.Errorf("generic images = %d, want 2", len(generic))
	}
	if !strings.Contains(generic[0].Alt, "Quasars") {
		t.Errorf("generic alt text should mention the topic: %q", generic[0].Alt)
	}
}
