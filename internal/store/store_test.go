package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/curiolab/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	rec := s.Records()
	ctx := context.Background()

	// Empty store: both records absent.
	p, err := rec.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none saved")
	}
	up, err := rec.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("load progress (empty): %v", err)
	}
	if up != nil {
		t.Fatal("expected nil progress when none saved")
	}

	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	err = rec.SaveProfile(ctx, &progress.Profile{
		Name:      "Maya",
		Grade:     4,
		Avatar:    "🦊",
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}

	err = rec.SaveProgress(ctx, &progress.UserProgress{
		Profile: progress.Profile{Name: "Maya", Grade: 4},
		Sessions: []progress.LearningSession{
			{ID: "s1", Topic: "Dragons", Dimension: "Science", Grade: 4, WordCount: 320},
		},
		TotalTimeSpent: 90,
		TopicsExplored: 1,
		TopicCompletions: map[string]*progress.TopicCompletion{
			"Dragons": {
				Topic:               "Dragons",
				DimensionsCompleted: []string{"Science"},
				TotalDimensions:     5,
				CompletedAt:         []string{"2026-03-10"},
			},
		},
		Streak: progress.LearningStreak{
			CurrentStreak:  1,
			LongestStreak:  1,
			LastActiveDate: "2026-03-10",
			StreakHistory:  []string{"2026-03-10"},
		},
	})
	if err != nil {
		t.Fatalf("save progress: %v", err)
	}

	p, err = rec.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if p.Name != "Maya" || p.Grade != 4 || !p.CreatedAt.Equal(created) {
		t.Errorf("profile round-trip mismatch: %+v", p)
	}

	up, err = rec.LoadProgress(ctx)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if len(up.Sessions) != 1 || up.Sessions[0].Topic != "Dragons" {
		t.Errorf("sessions round-trip mismatch: %+v", up.Sessions)
	}
	if up.TopicCompletions["Dragons"] == nil || up.TopicCompletions["Dragons"].DimensionsCompleted[0] != "Science" {
		t.Errorf("completions round-trip mismatch: %+v", up.TopicCompletions)
	}
	if up.Streak.LastActiveDate != "2026-03-10" {
		t.Errorf("streak round-trip mismatch: %+v", up.Streak)
	}
}

func TestRecordsOverwrite(t *testing.T) {
	s := openTestStore(t)
	rec := s.Records()
	ctx := context.Background()

	for grade := 3; grade <= 5; grade++ {
		if err := rec.SaveProfile(ctx, &progress.Profile{Name: "Maya", Grade: grade}); err != nil {
			t.Fatalf("save profile: %v", err)
		}
	}

	p, err := rec.LoadProfile(ctx)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if p.Grade != 5 {
		t.Errorf("grade = %d, want last write (5)", p.Grade)
	}
}

func TestResetDeletesBothRecords(t *testing.T) {
	s := openTestStore(t)
	rec := s.Records()
	ctx := context.Background()

	if err := rec.SaveProfile(ctx, &progress.Profile{Name: "Maya", Grade: 4}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if err := rec.SaveProgress(ctx, &progress.UserProgress{TopicsExplored: 1}); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	if err := rec.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	p, _ := rec.LoadProfile(ctx)
	up, _ := rec.LoadProgress(ctx)
	if p != nil || up != nil {
		t.Fatal("reset must delete both records")
	}
}
