package cmd

import (
	"fmt"

	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/submit"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Deliver queued reports to the server",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		notify := func(n submit.Notification) {
			status := "ok"
			if !n.Success {
				status = "failed"
			}
			fmt.Printf("  %-12s %-22s %s\n", n.Kind, n.Target, status)
		}

		coord := submit.New(client, st.EventRepo(), st.PendingRepo(), notify)
		delivered, failed, err := coord.Sync(cmd.Context())
		if err != nil {
			return fmt.Errorf("sync: %w", err)
		}

		if delivered == 0 && failed == 0 {
			fmt.Println("Nothing to sync.")
			return nil
		}
		fmt.Printf("Delivered %d, failed %d.\n", delivered, failed)
		return nil
	},
}
