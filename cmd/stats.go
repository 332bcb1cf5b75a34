package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/curiolab/internal/progress"
	"github.com/abhisek/curiolab/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		records := st.Records()

		profile, err := records.LoadProfile(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if profile == nil {
			fmt.Println("No profile yet. Progress is only recorded after signup.")
			return nil
		}

		up, err := records.LoadProgress(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Printf("%s (grade %d)\n\n", profile.Name, profile.Grade)
		if up == nil {
			fmt.Println("No sessions completed yet.")
			return nil
		}

		fmt.Printf("Sessions completed:  %d\n", len(up.Sessions))
		fmt.Printf("Time spent:          %dm %ds\n", up.TotalTimeSpent/60, up.TotalTimeSpent%60)
		fmt.Printf("Topics explored:     %d\n", up.TopicsExplored)
		fmt.Printf("Current streak:      %d day(s)\n", up.Streak.CurrentStreak)
		fmt.Printf("Longest streak:      %d day(s)\n", up.Streak.LongestStreak)
		fmt.Printf("Next milestone:      %d days\n", progress.NextMilestone(up.Streak.CurrentStreak))

		if len(up.TopicCompletions) > 0 {
			fmt.Println("\nTopics:")
			topics := make([]string, 0, len(up.TopicCompletions))
			for topic := range up.TopicCompletions {
				topics = append(topics, topic)
			}
			sort.Strings(topics)
			for _, topic := range topics {
				tc := up.TopicCompletions[topic]
				mark := " "
				if tc.IsFullyComplete {
					mark = "✓"
				}
				fmt.Printf("  %s %-20s %d/%d dimensions\n", mark, tc.Topic, len(tc.DimensionsCompleted), tc.TotalDimensions)
			}
		}
		return nil
	},
}
