package progress

import "time"

// DateStamp is a calendar day in YYYY-MM-DD form. Streaks and topic
// completions are tracked per day, not per instant.
type DateStamp = string

// Stamp converts a time to its DateStamp in the time's location.
func Stamp(t time.Time) DateStamp {
	return t.Format("2006-01-02")
}

// Grade levels supported by the content generator.
const (
	MinGrade = 3
	MaxGrade = 5
)

// DefaultTotalDimensions is the dimension count assumed for a topic when
// the suggestion service did not supply one.
const DefaultTotalDimensions = 5

// Rating is a thumbs up/down verdict on a completed session.
type Rating string

const (
	RatingUp   Rating = "up"
	RatingDown Rating = "down"
)

// Profile identifies the learner. Progress is only recorded while a
// profile exists.
type Profile struct {
	Name      string    `json:"name"`
	Grade     int       `json:"grade"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// LearningSession is one topic/dimension reading session. A session is
// open from StartSession until CompleteSession fills in CompletedAt.
type LearningSession struct {
	ID               string     `json:"id"`
	Topic            string     `json:"topic"`
	Dimension        string     `json:"dimension"`
	Grade            int        `json:"grade"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	TimeSpentSeconds int        `json:"timeSpentSeconds"`
	Rating           Rating     `json:"rating,omitempty"`
	WordCount        int        `json:"wordCount"`
	ReadabilityScore float64    `json:"readabilityScore"`
}

// TopicCompletion tracks which dimensions of a topic the learner has
// finished. DimensionsCompleted and CompletedAt are parallel slices in
// insertion order.
type TopicCompletion struct {
	Topic               string      `json:"topic"`
	DimensionsCompleted []string    `json:"dimensionsCompleted"`
	TotalDimensions     int         `json:"totalDimensions"`
	CompletedAt         []DateStamp `json:"completedAt"`
	IsFullyComplete     bool        `json:"isFullyComplete"`
}

// recompute derives IsFullyComplete from the other fields. It is never
// set any other way.
func (tc *TopicCompletion) recompute() {
	tc.IsFullyComplete = len(tc.DimensionsCompleted) >= tc.TotalDimensions
}

// StreakHistoryCap bounds how many active days are remembered.
const StreakHistoryCap = 30

// LearningStreak counts consecutive calendar days with at least one
// completed session.
type LearningStreak struct {
	CurrentStreak  int         `json:"currentStreak"`
	LongestStreak  int         `json:"longestStreak"`
	LastActiveDate DateStamp   `json:"lastActiveDate"`
	StreakHistory  []DateStamp `json:"streakHistory"`
}

// UserProgress is the aggregate progress record for one learner.
type UserProgress struct {
	Profile          Profile                     `json:"profile"`
	Sessions         []LearningSession           `json:"sessions"`
	TotalTimeSpent   int                         `json:"totalTimeSpent"`
	TopicsExplored   int                         `json:"topicsExplored"`
	TopicCompletions map[string]*TopicCompletion `json:"topicCompletions"`
	Streak           LearningStreak              `json:"streak"`
	CreatedAt        time.Time                   `json:"createdAt"`
	LastActivity     time.Time                   `json:"lastActivity"`
}

// ContentMetadata is what the tracker consumes from a generated article.
type ContentMetadata struct {
	WordCount        int
	ReadabilityScore float64
}

// distinctTopics counts unique topics across the session sequence.
func distinctTopics(sessions []LearningSession) int {
	seen := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		seen[s.Topic] = struct{}{}
	}
	return len(seen)
}
