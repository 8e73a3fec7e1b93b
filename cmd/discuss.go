package cmd

import (
	"fmt"

	"github.com/campusterm/campus/internal/app"
	"github.com/campusterm/campus/internal/screens/discussions"
	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/submit"
	"github.com/spf13/cobra"
)

var discussCmd = &cobra.Command{
	Use:   "discuss <course-id>",
	Short: "Browse and post course discussions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		scr := discussions.New(args[0], client, coord)

		return app.Run(app.Options{Start: scr, Server: server})
	},
}
