package content

import (
	"errors"
	"testing"
)

func TestTopicAppropriate(t *testing.T) {
	tests := []struct {
		topic string
		want  bool
	}{
		{"Dragons", true},
		{"Space", true},
		{"Ancient Egypt", true},
		{"guns", false},
		{"World War II", false},
		{"scary stories", false},
		{"GHOST towns", false}, // case-insensitive
		{"  violence  ", false},
	}
	for _, tt := range tests {
		if got := TopicAppropriate(tt.topic); got != tt.want {
			t.Errorf("TopicAppropriate(%q) = %v, want %v", tt.topic, got, tt.want)
		}
	}
}

func TestValidateTopic(t *testing.T) {
	if err := ValidateTopic("Dragons"); err != nil {
		t.Errorf("ValidateTopic(Dragons) = %v", err)
	}
	if err := ValidateTopic("x"); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("short topic error = %v, want ErrInvalidTopic", err)
	}
	if err := ValidateTopic("  "); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("blank topic error = %v, want ErrInvalidTopic", err)
	}
	if err := ValidateTopic("horror movies"); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("inappropriate topic error = %v, want ErrInvalidTopic", err)
	}
}

func TestValidateGrade(t *testing.T) {
	for grade := 3; grade <= 5; grade++ {
		if err := ValidateGrade(grade); err != nil {
			t.Errorf("ValidateGrade(%d) = %v", grade, err)
		}
	}
	for _, grade := range []int{0, 2, 6, 12} {
		if err := ValidateGrade(grade); !errors.Is(err, ErrInvalidGrade) {
			t.Errorf("ValidateGrade(%d) = %v, want ErrInvalidGrade", grade, err)
		}
	}
}
