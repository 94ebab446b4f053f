package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Check the LLM provider and inspect request/response events",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Send a tiny request to the configured LLM provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := llm.WithPurpose(cmd.Context(), "connectivity-check")
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			System:    "Reply with the single word: ready",
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Are you ready?"}},
			MaxTokens: 32,
		})
		if err != nil {
			if code, ok := llm.CodeOf(err); ok && code == llm.CodeAuth {
				return fmt.Errorf("provider rejected the API key: %w", err)
			}
			return fmt.Errorf("request failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Model:    %s\n", resp.Model)
		fmt.Fprintf(out, "Latency:  %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(out, "Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		if price, ok := llm.PriceOf(resp.Model); ok {
			fmt.Fprintf(out, "Cost:     %s\n", formatCost(price.Cost(resp.Usage)))
		}
		fmt.Fprintf(out, "Reply:    %s\n", strings.TrimSpace(string(resp.Content)))
		return nil
	},
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		limit, _ := f.GetInt("limit")
		since, _ := f.GetDuration("since")
		var filter store.LLMFilter
		filter.Purpose, _ = f.GetString("purpose")
		filter.QuizID, _ = f.GetString("quiz")
		filter.FailedOnly, _ = f.GetBool("failed")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), opts, filter)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No LLM events found.")
			return nil
		}

		t := newTable([]string{"ID", "Time", "Purpose", "Quiz", "Model", "In", "Out", "Latency", ""}, 0, 5, 6, 7)
		for _, e := range events {
			mark := theme.Correct.Render("✓")
			if !e.Success {
				mark = theme.Incorrect.Render("✗")
			}
			t.Row(
				strconv.Itoa(e.ID),
				e.Timestamp.Local().Format("01-02 15:04:05"),
				e.Purpose,
				clip(e.QuizID, 12),
				clip(e.Model, 28),
				strconv.Itoa(e.InputTokens),
				strconv.Itoa(e.OutputTokens),
				(time.Duration(e.LatencyMs) * time.Millisecond).String(),
				mark,
			)
		}
		printTable(cmd.OutOrStdout(), t)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("event id %q is not a number", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		out := cmd.OutOrStdout()
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(10)
		field := func(name, value string) {
			if value != "" {
				lipgloss.Fprintln(out, label.Render(name)+value)
			}
		}
		field("Event", strconv.Itoa(e.ID))
		field("Time", e.Timestamp.Local().Format(time.DateTime))
		field("Provider", e.Provider)
		field("Model", e.Model)
		field("Purpose", e.Purpose)
		field("Quiz", e.QuizID)
		field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
		if price, ok := llm.PriceOf(e.Model); ok {
			field("Cost", formatCost(price.Cost(llm.Usage{InputTokens: e.InputTokens, OutputTokens: e.OutputTokens})))
		}
		field("Latency", (time.Duration(e.LatencyMs) * time.Millisecond).String())
		if e.Success {
			field("Result", theme.Correct.Render("ok"))
		} else {
			field("Result", theme.Incorrect.Render("failed"))
			field("Error", e.ErrorMessage)
		}

		section := func(title, body string) {
			rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", 60))
			lipgloss.Fprintln(out, "\n"+theme.Selected.Render(title)+"\n"+rule)
			if body == "" {
				body = "(not captured)"
			}
			fmt.Fprintln(out, body)
		}
		section("Request", e.RequestBody)
		section("Response", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		var calls, in, outTok int
		usage := newTable([]string{"Purpose", "Calls", "Input", "Output", "Avg latency"}, 1, 2, 3, 4)
		for _, st := range byPurpose {
			usage.Row(st.Purpose, strconv.Itoa(st.Calls), strconv.Itoa(st.InputTokens), strconv.Itoa(st.OutputTokens),
				(time.Duration(st.AvgLatencyMs) * time.Millisecond).String())
			calls += st.Calls
			in += st.InputTokens
			outTok += st.OutputTokens
		}
		usage.Row("total", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(outTok), "")
		printTable(out, usage)

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		var total float64
		var unpriced []string
		costs := newTable([]string{"Model", "Calls", "Input", "Output", "Cost (USD)"}, 1, 2, 3, 4)
		for _, mu := range byModel {
			cost := "?"
			if price, ok := llm.PriceOf(mu.Model); ok {
				c := price.Cost(llm.Usage{InputTokens: mu.InputTokens, OutputTokens: mu.OutputTokens})
				total += c
				cost = formatCost(c)
			} else {
				unpriced = append(unpriced, mu.Model)
			}
			costs.Row(clip(mu.Model, 32), strconv.Itoa(mu.Calls), strconv.Itoa(mu.InputTokens), strconv.Itoa(mu.OutputTokens), cost)
		}
		totalLabel := "total"
		if len(unpriced) > 0 {
			totalLabel = "total (partial)"
		}
		costs.Row(totalLabel, "", "", "", formatCost(total))
		fmt.Fprintln(out)
		printTable(out, costs)

		if len(unpriced) > 0 {
			fmt.Fprintf(out, "\nNo price known for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	f := llmListCmd.Flags()
	f.IntP("limit", "n", 20, "Number of events to show")
	f.StringP("purpose", "p", "", "Only events with this purpose, e.g. question-draft")
	f.String("quiz", "", "Only events made while authoring this quiz")
	f.Bool("failed", false, "Only failed requests")
	f.Duration("since", 0, "Only events newer than this, e.g. 24h")

	llmCmd.AddCommand(llmCheckCmd, llmListCmd, llmViewCmd, llmStatsCmd)
}
