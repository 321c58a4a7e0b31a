package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the model request log",
	Long: `Every solve, illustration and narration call is recorded in the local
request log. These commands list, show and summarize those calls.`,
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")

		return withEventRepo(cmd, func(repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(cmd.Context(), store.QueryOpts{
				Limit:      limit,
				Purpose:    purpose,
				FailedOnly: failed,
			})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			writeEventList(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of a logged call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withEventRepo(cmd, func(repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}
			writeEventDetail(cmd.OutOrStdout(), e)
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventRepo(cmd, func(repo store.EventRepo) error {
			ctx := cmd.Context()
			byPurpose, err := repo.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			byModel, err := repo.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			writeUsage(cmd.OutOrStdout(), byPurpose, byModel)
			return nil
		})
	},
}

// withEventRepo opens the request log for the duration of fn.
func withEventRepo(cmd *cobra.Command, fn func(store.EventRepo) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()
	return fn(s.EventRepo())
}

func writeEventList(w io.Writer, events []store.LLMRequestEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No model requests found."))
		return
	}

	fmt.Fprintln(w, theme.Heading.Render(fmt.Sprintf("%-5s  %-19s  %-10s  %-8s  %-28s  %6s  %6s  %7s  %s",
		"ID", "Timestamp", "Purpose", "Kind", "Model", "In", "Out", "Ms", "OK")))
	fmt.Fprintln(w, rule(108))

	for _, e := range events {
		status := theme.Answer.Render("✓")
		if !e.Success {
			status = theme.Failure.Render("✗")
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-10s  %-8s  %-28s  %6d  %6d  %7d  %s\n",
			e.ID,
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			e.Kind,
			truncate(e.Model, 28),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			status,
		)
	}
}

func writeEventDetail(w io.Writer, e *store.LLMRequestEvent) {
	field := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", theme.Hint.Render(fmt.Sprintf("%-10s", label+":")), value)
	}

	field("ID", strconv.Itoa(e.ID))
	field("Time", e.Timestamp.Local().Format(timeLayout))
	field("Request", e.RequestID)
	field("Provider", e.Provider)
	field("Model", e.Model)
	field("Purpose", e.Purpose)
	field("Kind", e.Kind)
	field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
	field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
	field("Success", strconv.FormatBool(e.Success))
	if e.ErrorMessage != "" {
		field("Error", theme.Failure.Render(e.ErrorMessage))
	}

	for _, section := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		fmt.Fprintln(w)
		fmt.Fprintln(w, rule(60))
		fmt.Fprintln(w, theme.Heading.Render(section.title))
		fmt.Fprintln(w, rule(60))
		if section.body == "" {
			fmt.Fprintln(w, theme.Hint.Render("(not captured)"))
			continue
		}
		fmt.Fprintln(w, section.body)
	}
}

func writeUsage(w io.Writer, byPurpose []store.PurposeUsage, byModel []store.ModelUsage) {
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No model usage recorded yet."))
		return
	}

	fmt.Fprintln(w, theme.Title.Render("Usage by Purpose"))
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-16s  %6s  %10s  %10s  %10s  %8s\n", "Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(w, rule(72))

	var calls, in, out int
	for _, u := range byPurpose {
		fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
			u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, out, in+out)

	if len(byModel) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("Estimated Cost (USD)"))
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, rule(72))

	var total float64
	var unpriced []string
	for _, u := range byModel {
		cost := "?"
		if p := llm.LookupCost(u.Model); p != nil {
			c := p.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, cost)
	}

	fmt.Fprintln(w, rule(72))
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\n%s\n", theme.Hint.Render("Pricing unavailable for: "+strings.Join(unpriced, ", ")))
	}
}

func rule(width int) string {
	return theme.Hint.Render(strings.Repeat("─", width))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (solve, illustrate, narrate)")
	llmListCmd.Flags().Bool("failed", false, "Show only failed requests")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
