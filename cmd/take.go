package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/screens/exam"
)

var takeCmd = &cobra.Command{
	Use:   "take <quizID>",
	Short: "Take a quiz",
	Long: `Fetch a quiz from the platform and take it.

Timed quizzes are submitted automatically when the countdown reaches zero.
If the submission cannot be delivered the responses are kept in the local
journal; send them later with "quizdeck resubmit".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, envOptions{requireAPI: true})
		if err != nil {
			return err
		}
		defer e.Close()

		return app.Run(cmd.Context(), exam.New(args[0], e.homeDeps().ExamDeps()))
	},
}
