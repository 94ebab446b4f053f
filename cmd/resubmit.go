package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/session"
)

var resubmitCmd = &cobra.Command{
	Use:   "resubmit [sessionID]",
	Short: "Resend submissions that never reached the platform",
	Long: `Resend the responses of sessions whose submission failed. With no
argument every pending submission is resent, oldest first. The session id
is sent as an idempotency key so the platform can drop duplicates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd, envOptions{requireAPI: true})
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		repo := e.store.JournalRepo()

		var ids []string
		if len(args) == 1 {
			ids = args
		} else {
			pending, err := repo.ListPending(ctx)
			if err != nil {
				return fmt.Errorf("list pending submissions: %w", err)
			}
			for _, p := range pending {
				ids = append(ids, p.SessionID)
			}
		}
		if len(ids) == 0 {
			fmt.Println("No pending submissions.")
			return nil
		}

		var failed int
		for _, id := range ids {
			result, err := session.ResendPending(ctx, e.service, repo, id)
			switch {
			case errors.Is(err, session.ErrNothingPending):
				fmt.Printf("%s  nothing pending\n", id)
			case err != nil:
				failed++
				fmt.Printf("%s  failed: %v\n", id, err)
			default:
				verdict := "not passed"
				if result.Passed {
					verdict = "passed"
				}
				fmt.Printf("%s  delivered: score %.0f/100, %s\n", id, result.Score, verdict)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d submission(s) still pending", failed, len(ids))
		}
		return nil
	},
}
