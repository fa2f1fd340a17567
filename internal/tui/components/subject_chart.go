package components

import (
	"fmt"

	"nathanbeddoewebdev/courseplan/internal/catalog"
	"nathanbeddoewebdev/courseplan/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// maxChartSubjects caps the number of bars; the rest are summarized.
const maxChartSubjects = 12

// SubjectChart renders a horizontal bar chart of courses per subject.
// Returns a muted placeholder if counts is empty.
func SubjectChart(counts []catalog.SubjectCount, width int) string {
	if len(counts) == 0 {
		return styles.MutedText.Render("Courses per subject: no data")
	}

	shown := counts
	hidden := 0
	if len(shown) > maxChartSubjects {
		for _, c := range shown[maxChartSubjects:] {
			hidden += c.Count
		}
		shown = shown[:maxChartSubjects]
	}

	bar := lipgloss.NewStyle().Foreground(styles.Blue)
	data := make([]barchart.BarData, len(shown))
	for i, c := range shown {
		data[i] = barchart.BarData{
			Label: c.Subject,
			Values: []barchart.BarValue{
				{Name: c.Subject, Value: float64(c.Count), Style: bar},
			},
		}
	}

	chartWidth := max(width, 20)
	// One row per bar plus a gap row between bars.
	chartHeight := len(data)*2 - 1
	chart := barchart.New(chartWidth, chartHeight, barchart.WithHorizontalBars())
	chart.PushAll(data)
	chart.Draw()

	lines := []string{styles.Label.Render("Courses per subject"), chart.View()}
	lines = append(lines, styles.MutedText.Render(subjectSummary(shown, hidden)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// subjectSummary lists each shown subject with its count, plus the number
// of courses in subjects that did not fit.
func subjectSummary(shown []catalog.SubjectCount, hidden int) string {
	s := ""
	for i, c := range shown {
		if i > 0 {
			s += "  "
		}
		s += fmt.Sprintf("%s: %d", c.Subject, c.Count)
	}
	if hidden > 0 {
		s += fmt.Sprintf("  (+%d in other subjects)", hidden)
	}
	return s
}
