package cmd

import (
	"fmt"
	"os"

	"github.com/campusterm/campus/internal/app"
	"github.com/campusterm/campus/internal/screens/home"
	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/submit"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI on the
// home menu. The app works offline; server-backed entries are hidden when
// no server is configured.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Home: home.Deps{
			Events:  st.EventRepo(),
			Pending: st.PendingRepo(),
		},
	}

	client, server, err := resolveClient(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "No server configured; discussions are unavailable.")
	} else {
		opts.Server = server
		if courseID, _ := cmd.Flags().GetString("course"); courseID != "" {
			coord := submit.New(client, st.EventRepo(), st.PendingRepo(), nil)
			opts.Home.CourseID = courseID
			opts.Home.DiscussionsClient = client
			opts.Home.DiscussionsPoster = coord
		}
	}

	return app.Run(opts)
}

func init() {
	rootCmd.Flags().String("course", "", "Course ID for the discussions entry")
}
