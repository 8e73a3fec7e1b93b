package cmd

import (
	"fmt"

	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/submit"
	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <course-id>",
	Short: "Enroll in a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID := args[0]

		client, _, err := resolveClient(cmd)
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
		if err := coord.Enroll(cmd.Context(), courseID); err != nil {
			fmt.Printf("Could not enroll in %s now; the request is queued for campus sync.\n", courseID)
			return nil
		}

		fmt.Printf("Enrolled in %s.\n", courseID)
		return nil
	},
}
