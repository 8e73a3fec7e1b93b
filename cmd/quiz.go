package cmd

import (
	"fmt"

	"github.com/campusterm/campus/internal/api/quizfile"
	"github.com/campusterm/campus/internal/app"
	"github.com/campusterm/campus/internal/clock"
	quizscreen "github.com/campusterm/campus/internal/screens/quiz"
	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/submit"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <definition.json>",
	Short: "Take a timed quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := quizfile.Load(args[0])
		if err != nil {
			return err
		}

		client, server, err := resolveClient(cmd)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		coord := submit.New(client, st.EventRepo(), st.PendingRepo(), nil)
		resume, _ := cmd.Flags().GetBool("resume")

		scr, err := quizscreen.New(*q, coord, st.EventRepo(), clock.System(), resume)
		if err != nil {
			return fmt.Errorf("start quiz: %w", err)
		}

		return app.Run(app.Options{Start: scr, Server: server})
	},
}

func init() {
	quizCmd.Flags().Bool("resume", false, "Restore answers committed in an earlier run of this quiz")
}
