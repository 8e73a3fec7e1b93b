package cmd

import (
	"fmt"
	"os"

	"github.com/campusterm/campus/internal/api"
	"github.com/campusterm/campus/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "campus",
	Short: "Terminal client for the Campus learning platform",
	Long:  "Campus — take timed quizzes, track lesson watch time, and join course discussions from the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CAMPUS_DB env var)")
	rootCmd.PersistentFlags().String("server", "", "Platform server base URL (overrides CAMPUS_SERVER env var)")
	rootCmd.PersistentFlags().String("token", "", "API token (overrides CAMPUS_TOKEN env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(discussCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CAMPUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveServer returns the platform base URL from --server or CAMPUS_SERVER.
func resolveServer(cmd *cobra.Command) (string, error) {
	if s, _ := cmd.Flags().GetString("server"); s != "" {
		return s, nil
	}
	if s := os.Getenv("CAMPUS_SERVER"); s != "" {
		return s, nil
	}
	return "", fmt.Errorf("no server configured: pass --server or set CAMPUS_SERVER")
}

// resolveClient builds an API client from the command's flags and environment.
func resolveClient(cmd *cobra.Command) (*api.Client, string, error) {
	server, err := resolveServer(cmd)
	if err != nil {
		return nil, "", err
	}
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("CAMPUS_TOKEN")
	}
	return api.NewClient(server, token), server, nil
}
