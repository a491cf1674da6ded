package services

import (
	"math"
	"time"

	"github.com/Shubhamagrahari9191/Todolist/internal/constants"
	model "github.com/Shubhamagrahari9191/Todolist/internal/models"
)

// Chart-ready aggregates over an in-memory task list. Everything here is
// recomputed per call; nothing is cached.

var subjectPalette = []string{"#8b5cf6", "#f472b6", "#34d399", "#facc15", "#60a5fa"}

const trendDays = 7

const dateLayout = "2006-01-02"

type SubjectSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// SubjectDistribution counts non-event tasks per subject, one slice per
// distinct subject in first-seen order, colored cyclically from the palette.
// Tasks without a subject fall under "Uncategorized".
func SubjectDistribution(tasks []model.Task) []SubjectSlice {
	counts := make(map[string]int)
	var order []string

	for _, task := range tasks {
		if task.IsEvent {
			continue
		}
		subject := task.Subject
		if subject == "" {
			subject = "Uncategorized"
		}
		if _, seen := counts[subject]; !seen {
			order = append(order, subject)
		}
		counts[subject]++
	}

	slices := make([]SubjectSlice, 0, len(order))
	for i, subject := range order {
		slices = append(slices, SubjectSlice{
			Label: subject,
			Value: counts[subject],
			Color: subjectPalette[i%len(subjectPalette)],
		})
	}
	return slices
}

type TrendPoint struct {
	Label string `json:"label"`
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// CompletionTrend counts completed tasks per scheduled date over the
// trailing 7 calendar days, oldest first and inclusive of today. Days
// without completions appear with a zero value.
func CompletionTrend(tasks []model.Task, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, trendDays)
	index := make(map[string]int, trendDays)

	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := day.Format(dateLayout)
		index[date] = len(points)
		points = append(points, TrendPoint{
			Label: day.Format("Mon"),
			Date:  date,
		})
	}

	for _, task := range tasks {
		if task.Status != constants.StatusCompleted {
			continue
		}
		if i, ok := index[task.Date]; ok {
			points[i].Value++
		}
	}

	return points
}

type Scorecard struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Productivity int `json:"productivity"`
	Completion   int `json:"completion"`
}

// BuildScorecard computes the dashboard donut percentages: productivity is
// the completed share, completion the non-pending share, both rounded to
// the nearest integer percent. An empty list yields zeros.
func BuildScorecard(tasks []model.Task) Scorecard {
	card := Scorecard{Total: len(tasks)}

	nonPending := 0
	for _, task := range tasks {
		if task.Status == constants.StatusCompleted {
			card.Completed++
		}
		if task.Status != constants.StatusPending {
			nonPending++
		}
	}

	denominator := card.Total
	if denominator == 0 {
		denominator = 1
	}

	card.Productivity = roundPercent(card.Completed, denominator)
	card.Completion = roundPercent(nonPending, denominator)
	return card
}

func roundPercent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}

type ProgressSegments struct {
	Pending    float64 `json:"pending"`
	InProgress float64 `json:"inProgress"`
	Completed  float64 `json:"completed"`
}

// BuildProgressSegments sizes the three status segments as percentage
// widths of the total. All zero when the list is empty.
func BuildProgressSegments(tasks []model.Task) ProgressSegments {
	total := len(tasks)
	if total == 0 {
		return ProgressSegments{}
	}

	var pending, inProgress, completed int
	for _, task := range tasks {
		switch task.Status {
		case constants.StatusCompleted:
			completed++
		case constants.StatusInProgress:
			inProgress++
		default:
			pending++
		}
	}

	return ProgressSegments{
		Pending:    float64(pending) / float64(total) * 100,
		InProgress: float64(inProgress) / float64(total) * 100,
		Completed:  float64(completed) / float64(total) * 100,
	}
}
