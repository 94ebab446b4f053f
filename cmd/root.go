package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/screens/home"
	"github.com/abhisek/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Take and author quizzes in the terminal",
	Long: `quizdeck is a terminal client for an education platform's quizzes.

Learners take timed or untimed quizzes; authors build them question by
question. Scores are computed by the platform; quizdeck keeps a local
journal of every session so failed submissions can be resent.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, envOptions{withLLM: true})
		if err != nil {
			return err
		}
		defer e.Close()
		return app.Run(cmd.Context(), home.New(e.homeDeps()))
	},
}

// Execute runs the command line until ctx is cancelled.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	pf.String("api", "", "Platform API base URL (overrides QUIZDECK_API_URL)")
	pf.String("token", "", "Platform API bearer token (overrides QUIZDECK_API_TOKEN)")
	pf.String("log", "", "Write logs to this file (overrides QUIZDECK_LOG)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.StringSlice("env", nil, "Load settings from these .env files (default .env)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(resubmitCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath prefers --db over QUIZDECK_DB over the XDG default.
func resolveDBPath(cmd *cobra.Command, fromEnv string) (string, error) {
	flag, _ := cmd.Flags().GetString("db")
	return store.ResolvePath(flag, fromEnv)
}
