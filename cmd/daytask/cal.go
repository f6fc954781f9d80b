package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/example/daytask/calendar"
	"github.com/example/daytask/internal/ui"
)

var calCmd = &cobra.Command{
	Use:   "cal",
	Short: "Show a month calendar with due-date counts",
	Args:  cobra.NoArgs,
	RunE:  runCal,
}

var calMonth string

func init() {
	rootCmd.AddCommand(calCmd)
	calCmd.Flags().StringVar(&calMonth, "month", "", "Month to show (YYYY-MM)")
}

var (
	calHeaderStyle = lipgloss.NewStyle().Bold(true)
	calWeekStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	calTodayStyle  = lipgloss.NewStyle().Reverse(true)
	calDueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

func runCal(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	now := commandNow()
	anchor := calendar.AnchorAt(now)
	if calMonth != "" {
		parsed, err := time.ParseInLocation("2006-01", calMonth, time.Local)
		if err != nil {
			return fmt.Errorf("--month %q: expected YYYY-MM", calMonth)
		}
		anchor = calendar.AnchorAt(parsed)
	}

	fmt.Print(formatCalendar(anchor, calendar.DueIndex(store.Tasks()), now))
	return nil
}

func formatCalendar(anchor calendar.Anchor, entries map[string]calendar.DayEntry, now time.Time) string {
	var b strings.Builder

	b.WriteString(calHeaderStyle.Render(fmt.Sprintf("%s %d", anchor.Month, anchor.Year)))
	b.WriteString("\n")
	b.WriteString(calWeekStyle.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	today := 0
	if anchor.Contains(now) {
		today = now.Day()
	}

	for _, week := range calendar.MonthGrid(anchor.Year, anchor.Month) {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			cells = append(cells, calendarCell(anchor, day, today, entries))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	if lines := dueSummaryLines(anchor, entries); len(lines) > 0 {
		b.WriteString("\n")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func calendarCell(anchor calendar.Anchor, day, today int, entries map[string]calendar.DayEntry) string {
	if day == 0 {
		return "  "
	}

	cell := fmt.Sprintf("%2d", day)
	_, hasDue := entries[anchor.DayKey(day)]
	switch {
	case day == today:
		return calTodayStyle.Render(cell)
	case hasDue:
		return calDueStyle.Render(cell)
	}
	return cell
}

func dueSummaryLines(anchor calendar.Anchor, entries map[string]calendar.DayEntry) []string {
	var lines []string
	for day := 1; day <= daysInMonth(anchor); day++ {
		entry, ok := entries[anchor.DayKey(day)]
		if !ok {
			continue
		}
		summary := ui.TruncateTableCell(strings.Join(entry.Texts, "; "))
		lines = append(lines, fmt.Sprintf("%2d  %d due  %s", day, entry.Count, summary))
	}
	return lines
}

func daysInMonth(anchor calendar.Anchor) int {
	return time.Date(anchor.Year, anchor.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
