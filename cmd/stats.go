package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"aurafocus/internal/core/model"
	"aurafocus/internal/storage"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const recentLimit = 10

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completed sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsDays <= 0 {
			return fmt.Errorf("--days must be positive, got %d", statsDays)
		}
		dir, err := stateDir()
		if err != nil {
			return err
		}
		history, err := storage.OpenHistory(dir)
		if err != nil {
			return err
		}
		defer history.Close()
		return printStats(cmd.Context(), os.Stdout, history, statsDays, time.Now())
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "Number of days to summarize")
}

func printStats(ctx context.Context, out io.Writer, history *storage.History, days int, now time.Time) error {
	since := now.AddDate(0, 0, -days)
	summary, err := history.Summary(ctx, since)
	if err != nil {
		return err
	}
	recent, err := history.Recent(ctx, recentLimit)
	if err != nil {
		return err
	}

	totals := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Session", "Completed", "Time")
	for _, session := range model.SessionTypes {
		entry := summary[session]
		totals.Row(session.Label(), fmt.Sprintf("%d", entry.Count), formatTotal(entry.TotalSeconds))
	}
	fmt.Fprintf(out, "Last %d days\n%s\n", days, totals.String())

	if len(recent) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}
	latest := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Completed at", "Session", "Length")
	for _, record := range recent {
		latest.Row(
			record.CompletedAt.Local().Format("2006-01-02 15:04"),
			record.Session.Label(),
			formatTotal(int64(record.DurationSeconds)),
		)
	}
	fmt.Fprintf(out, "\nRecent\n%s\n", latest.String())
	return nil
}

func formatTotal(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
