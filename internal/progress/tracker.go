package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoProfile signals that the operation needs a learner profile. For
// feedback this tells the caller to prompt profile creation instead of
// recording the rating.
var ErrNoProfile = errors.New("no learner profile")

// ErrInvalidProfile rejects profile input that fails validation.
var ErrInvalidProfile = errors.New("invalid profile")

// Tracker owns the learner's progress record. All operations run to
// completion synchronously; the full record is re-read, transformed and
// rewritten on every mutation.
type Tracker struct {
	store Store
	emit  Emitter
	now   func() time.Time

	mu            sync.Mutex
	open          *LearningSession
	topicDimCount map[string]int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithEmitter routes transition events to the given emitter.
func WithEmitter(e Emitter) Option {
	return func(t *Tracker) { t.emit = e }
}

// WithClock overrides the time source. Tests use this to step through
// calendar days.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a Tracker over the given store.
func New(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:         store,
		emit:          NopEmitter{},
		now:           time.Now,
		topicDimCount: make(map[string]int),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CreateProfile validates and persists a new learner profile.
func (t *Tracker) CreateProfile(ctx context.Context, name string, grade int, avatar string) (*Profile, error) {
	if len(name) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidProfile)
	}
	if grade < MinGrade || grade > MaxGrade {
		return nil, fmt.Errorf("%w: grade must be between %d and %d", ErrInvalidProfile, MinGrade, MaxGrade)
	}

	p := &Profile{
		Name:      name,
		Grade:     grade,
		Avatar:    avatar,
		CreatedAt: t.now(),
	}
	if err := t.store.SaveProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	t.emit.Emit(EventProfileCreated, zap.Int("grade", grade))
	return p, nil
}

// UpdateProfile mutates name, grade and avatar on the existing profile.
// CreatedAt is kept. The copy embedded in UserProgress is updated in the
// same pass.
func (t *Tracker) UpdateProfile(ctx context.Context, name string, grade int, avatar string) (*Profile, error) {
	p, err := t.store.LoadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	if len(name) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrInvalidProfile)
	}
	if grade < MinGrade || grade > MaxGrade {
		return nil, fmt.Errorf("%w: grade must be between %d and %d", ErrInvalidProfile, MinGrade, MaxGrade)
	}

	p.Name = name
	p.Grade = grade
	p.Avatar = avatar
	if err := t.store.SaveProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	up, err := t.store.LoadProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if up != nil {
		up.Profile = *p
		if err := t.store.SaveProgress(ctx, up); err != nil {
			return nil, fmt.Errorf("save progress: %w", err)
		}
	}
	return p, nil
}

// Profile returns the current profile, or nil when none exists.
func (t *Tracker) Profile(ctx context.Context) (*Profile, error) {
	return t.store.LoadProfile(ctx)
}

// Progress returns the current progress record, or nil when none exists.
func (t *Tracker) Progress(ctx context.Context) (*UserProgress, error) {
	return t.store.LoadProgress(ctx)
}

// NoteDimensionCount records how many dimensions were actually generated
// for a topic. CompleteSession uses it when creating the topic's
// completion record; without it the default of 5 applies.
func (t *Tracker) NoteDimensionCount(topic string, count int) {
	if count <= 0 {
		return
	}
	t.mu.Lock()
	t.topicDimCount[topic] = count
	t.mu.Unlock()
}

// StartSession opens a new session. Nothing is persisted yet: an
// abandoned session leaves no trace. If a prior session is still open it
// is discarded, by policy rather than error.
func (t *Tracker) StartSession(topic, dimension string, grade int) *LearningSession {
	s := &LearningSession{
		ID:        uuid.NewString(),
		Topic:     topic,
		Dimension: dimension,
		Grade:     grade,
		StartedAt: t.now(),
	}

	t.mu.Lock()
	t.open = s
	t.mu.Unlock()

	t.emit.Emit(EventSessionStarted,
		zap.String("session_id", s.ID),
		zap.String("topic", topic),
		zap.String("dimension", dimension),
		zap.Int("grade", grade),
	)
	return s
}

// OpenSession returns the currently open session, or nil.
func (t *Tracker) OpenSession() *LearningSession {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open
}

// CompleteSession finalizes a session with the generated content's
// metadata and merges it into the progress record. Without a profile the
// session is discarded and nothing is persisted; the returned progress
// is nil and the error is nil too. Anonymous reading is allowed, just
// not tracked.
func (t *Tracker) CompleteSession(ctx context.Context, session *LearningSession, meta ContentMetadata) (*UserProgress, error) {
	if session == nil {
		return nil, nil
	}

	t.mu.Lock()
	if t.open != nil && t.open.ID == session.ID {
		t.open = nil
	}
	totalDims := t.topicDimCount[session.Topic]
	t.mu.Unlock()

	profile, err := t.store.LoadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, nil
	}

	now := t.now()
	completed := *session
	completed.CompletedAt = &now
	completed.WordCount = meta.WordCount
	completed.ReadabilityScore = meta.ReadabilityScore
	completed.TimeSpentSeconds = int(now.Sub(session.StartedAt).Seconds())
	if completed.TimeSpentSeconds < 0 {
		completed.TimeSpentSeconds = 0
	}

	up, err := t.store.LoadProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if up == nil {
		up = &UserProgress{
			Profile:          *profile,
			TopicCompletions: make(map[string]*TopicCompletion),
			CreatedAt:        now,
		}
	}

	today := Stamp(now)
	yesterday := Stamp(now.AddDate(0, 0, -1))

	up.Sessions = append(up.Sessions, completed)
	up.TotalTimeSpent += completed.TimeSpentSeconds
	up.TopicsExplored = distinctTopics(up.Sessions)

	prevStreak := up.Streak.CurrentStreak
	up.TopicCompletions = UpdateTopicCompletion(up.TopicCompletions, completed.Topic, completed.Dimension, today, totalDims)
	up.Streak = UpdateLearningStreak(up.Streak, today, yesterday)
	up.LastActivity = now

	if err := t.store.SaveProgress(ctx, up); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	t.emit.Emit(EventSessionCompleted,
		zap.String("session_id", completed.ID),
		zap.String("topic", completed.Topic),
		zap.String("dimension", completed.Dimension),
		zap.Int("time_spent_seconds", completed.TimeSpentSeconds),
		zap.Int("word_count", completed.WordCount),
	)
	if up.Streak.CurrentStreak != prevStreak {
		t.emit.Emit(EventStreakExtended, zap.Int("current_streak", up.Streak.CurrentStreak))
	}
	if tc := up.TopicCompletions[completed.Topic]; tc != nil && tc.IsFullyComplete {
		t.emit.Emit(EventTopicCompleted, zap.String("topic", completed.Topic))
	}

	return up, nil
}

// SubmitFeedback attaches a rating to the most recently completed
// session. Without a profile it returns ErrNoProfile so the caller can
// redirect to profile creation. With no sessions it is a no-op.
func (t *Tracker) SubmitFeedback(ctx context.Context, rating Rating) (*UserProgress, error) {
	profile, err := t.store.LoadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNoProfile
	}

	up, err := t.store.LoadProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if up == nil || len(up.Sessions) == 0 {
		return up, nil
	}

	up.Sessions[len(up.Sessions)-1].Rating = rating
	if err := t.store.SaveProgress(ctx, up); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	t.emit.Emit(EventFeedback,
		zap.String("session_id", up.Sessions[len(up.Sessions)-1].ID),
		zap.String("rating", string(rating)),
	)
	return up, nil
}

// ResetProfile deletes the profile and progress records together,
// returning the system to its anonymous initial state.
func (t *Tracker) ResetProfile(ctx context.Context) error {
	if err := t.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}

	t.mu.Lock()
	t.open = nil
	t.topicDimCount = make(map[string]int)
	t.mu.Unlock()

	t.emit.Emit(EventProfileReset)
	return nil
}
