package services

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	model "github.com/Shubhamagrahari9191/Todolist/internal/models"
)

const reportRowsPerPage = 20

// BuildReport renders the task list into a paginated printable document:
// a schedule table sorted by date and start time, followed by the subject
// distribution and the 7-day completion trend. Formatting only.
func BuildReport(tasks []model.Task, username string, now time.Time) string {
	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	pages := (len(sorted) + reportRowsPerPage - 1) / reportRowsPerPage
	if pages == 0 {
		pages = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s's Planner Report\n", username)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format(dateLayout))

	for page := 0; page < pages; page++ {
		start := page * reportRowsPerPage
		end := start + reportRowsPerPage
		if end > len(sorted) {
			end = len(sorted)
		}
		writeTaskTable(&b, sorted[start:end])
		fmt.Fprintf(&b, "\nPage %d of %d\n", page+1, pages)
		if page < pages-1 {
			b.WriteString("\f")
		}
	}

	writeReportSummary(&b, tasks, now)
	return b.String()
}

func writeTaskTable(b *strings.Builder, tasks []model.Task) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Time Range\tTitle\tSubject\tDate\tProgress")

	for _, task := range tasks {
		fmt.Fprintf(w, "%s - %s\t%s\t%s\t%s\t%d%%\n",
			orUnknown(task.StartTime),
			orUnknown(task.EndTime),
			task.Title,
			reportSubject(task),
			task.Date,
			task.Progress,
		)
	}

	w.Flush()
}

func orUnknown(value string) string {
	if value == "" {
		return "?"
	}
	return value
}

func reportSubject(task model.Task) string {
	if task.Subject != "" {
		return task.Subject
	}
	if task.IsEvent {
		return "EVENT"
	}
	return "-"
}

func writeReportSummary(b *strings.Builder, tasks []model.Task, now time.Time) {
	b.WriteString("\nSubject Distribution\n")
	slices := SubjectDistribution(tasks)
	total := 0
	for _, slice := range slices {
		total += slice.Value
	}
	if total == 0 {
		total = 1
	}
	for _, slice := range slices {
		fmt.Fprintf(b, "  %s: %d%%\n", slice.Label, roundPercent(slice.Value, total))
	}

	b.WriteString("\nCompletion Trend (last 7 days)\n")
	for _, point := range CompletionTrend(tasks, now) {
		fmt.Fprintf(b, "  %s %s: %d\n", point.Label, point.Date, point.Value)
	}
}
