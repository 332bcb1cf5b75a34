package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTopic rejects topics that fail validation.
var ErrInvalidTopic = errors.New("invalid topic")

// ErrInvalidGrade rejects grade levels outside the supported range.
var ErrInvalidGrade = errors.New("invalid grade level")

// inappropriateKeywords blocks obviously unsuitable topics before any
// prompt is sent. The LLM safety instructions are the second layer; this
// list catches the cheap, clear-cut cases.
var inappropriateKeywords = []string{
	// Violence and weapons
	"gun", "guns", "weapon", "weapons", "bomb", "bombs", "war", "wars",
	"kill", "killing", "murder", "death", "suicide",
	"violence", "violent", "fight", "fighting", "attack", "attacks",
	"terrorist", "terrorism", "shooting",

	// Mature content
	"sex", "sexual", "porn", "nude", "naked", "adult", "mature",
	"intimate", "romantic",

	// Drugs and substances
	"drug", "drugs", "alcohol", "beer", "wine", "cocaine", "marijuana",
	"smoking", "cigarette",

	// Disturbing content
	"scary", "horror", "ghost", "demon", "evil", "blood", "gore",
	"disturbing",
}

// ValidateTopic checks topic length and appropriateness for young
// learners.
func ValidateTopic(topic string) error {
	trimmed := strings.TrimSpace(topic)
	if len(trimmed) < 2 {
		return fmt.Errorf("%w: topic must be at least 2 characters long", ErrInvalidTopic)
	}
	if !TopicAppropriate(trimmed) {
		return fmt.Errorf("%w: please choose an educational topic appropriate for young learners", ErrInvalidTopic)
	}
	return nil
}

// TopicAppropriate reports whether the topic passes the keyword filter.
func TopicAppropriate(topic string) bool {
	lower := strings.ToLower(strings.TrimSpace(topic))
	for _, kw := range inappropriateKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// ValidateGrade checks the grade is in the supported 3-5 range.
func ValidateGrade(grade int) error {
	if grade < 3 || grade > 5 {
		return fmt.Errorf("%w: only grades 3-5 are supported", ErrInvalidGrade)
	}
	return nil
}
