package progress

// UpdateLearningStreak applies one calendar day of activity to the streak.
// The rule is evaluated against lastActiveDate only:
//
//   - already active today: no change
//   - active yesterday: streak continues
//   - anything else (gap, or never active): streak restarts at 1
//
// CurrentStreak is never decremented in place; a broken streak simply
// restarts. LongestStreak is the running maximum.
func UpdateLearningStreak(streak LearningStreak, today, yesterday DateStamp) LearningStreak {
	switch streak.LastActiveDate {
	case today:
		return streak
	case yesterday:
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}

	streak.StreakHistory = appendDay(streak.StreakHistory, today)
	streak.LastActiveDate = today
	return streak
}

// appendDay records today in the history, keeping entries distinct and
// capping at StreakHistoryCap by evicting the oldest.
func appendDay(history []DateStamp, today DateStamp) []DateStamp {
	for _, d := range history {
		if d == today {
			return history
		}
	}
	history = append(history, today)
	if n := len(history); n > StreakHistoryCap {
		history = history[n-StreakHistoryCap:]
	}
	return history
}
