package cmd

import (
	"fmt"

	"github.com/campusterm/campus/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz sessions and submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		sessions, err := st.EventRepo().RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		submissions, err := st.EventRepo().RecentSubmissions(ctx, limit)
		if err != nil {
			return fmt.Errorf("load submissions: %w", err)
		}

		if len(sessions) == 0 && len(submissions) == 0 {
			fmt.Println("No history yet.")
			return nil
		}

		if len(sessions) > 0 {
			fmt.Println("Quiz sessions:")
			for _, rec := range sessions {
				line := fmt.Sprintf("  %s  %-22s %-8s %d/%d answered",
					rec.Timestamp.Format("2006-01-02 15:04"),
					rec.QuizID, rec.Action, rec.QuestionsAnswered, rec.QuestionCount)
				if rec.AttemptID != "" {
					line += "  attempt " + rec.AttemptID
				}
				fmt.Println(line)
			}
		}

		if len(submissions) > 0 {
			fmt.Println("Submissions:")
			for _, rec := range submissions {
				outcome := "ok"
				if !rec.Success {
					outcome = "failed"
				}
				fmt.Printf("  %s  %-12s %-22s %-7s %dms\n",
					rec.Timestamp.Format("2006-01-02 15:04"),
					rec.Kind, rec.Target, outcome, rec.LatencyMs)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum entries per section")
}
