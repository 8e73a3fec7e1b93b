package cmd

import (
	"fmt"

	"github.com/campusterm/campus/internal/app"
	"github.com/campusterm/campus/internal/clock"
	lessonscreen "github.com/campusterm/campus/internal/screens/lesson"
	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/submit"
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <lesson-id>",
	Short: "Watch a lesson and track engagement time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := args[0]
		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = "Lesson " + lessonID
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
		scr := lessonscreen.New(lessonID, title, coord, st.EventRepo(), clock.System())

		return app.Run(app.Options{Start: scr, Server: server})
	},
}

func init() {
	lessonCmd.Flags().String("title", "", "Lesson title shown in the header")
}
