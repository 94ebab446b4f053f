package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [sessionID]",
	Short: "List past quiz sessions, or show one session's journal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if len(args) == 1 {
			return printSessionJournal(cmd, s.JournalRepo(), args[0])
		}

		limit, _ := cmd.Flags().GetInt("limit")
		ctx := cmd.Context()
		sessions, err := s.JournalRepo().ListSessions(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded yet.")
			return nil
		}

		pending := make(map[string]bool)
		if list, err := s.JournalRepo().ListPending(ctx); err == nil {
			for _, p := range list {
				pending[p.SessionID] = true
			}
		}

		t := newTable([]string{"Session", "Started", "Quiz", "Status", "Trigger", "Score", "Answered"}, 5, 6)
		for _, sess := range sessions {
			score := "-"
			if sess.Score != nil {
				score = fmt.Sprintf("%.0f", *sess.Score)
			}
			status := sess.Status
			if pending[sess.ID] {
				status += "*"
			}
			title := sess.QuizTitle
			if title == "" {
				title = sess.QuizID
			}
			t.Row(
				sess.ID,
				sess.StartedAt.Local().Format("2006-01-02 15:04"),
				clip(title, 24),
				status,
				sess.Trigger,
				score,
				fmt.Sprintf("%d/%d", sess.Answered, sess.Total),
			)
		}
		printTable(cmd.OutOrStdout(), t)

		if len(pending) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\n* submission pending; run `quizdeck resubmit` to resend")
		}
		return nil
	},
}

func printSessionJournal(cmd *cobra.Command, repo store.JournalRepo, sessionID string) error {
	ctx := cmd.Context()
	sess, err := repo.GetSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	events, err := repo.SessionEvents(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("query journal: %w", err)
	}

	fmt.Printf("Quiz:     %s (%s)\n", sess.QuizTitle, sess.QuizID)
	fmt.Printf("Status:   %s\n", sess.Status)
	fmt.Printf("Answered: %d of %d\n", sess.Answered, sess.Total)
	if sess.Score != nil {
		fmt.Printf("Score:    %.0f / 100\n", *sess.Score)
	}
	fmt.Println()

	for _, ev := range events {
		line := fmt.Sprintf("%s  %-14s", ev.Timestamp.Local().Format("15:04:05"), ev.Action)
		if ev.QuestionID != "" {
			line += "  " + ev.QuestionID
		}
		if ev.Detail != "" {
			line += "  " + ev.Detail
		}
		fmt.Println(line)
	}
	return nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
