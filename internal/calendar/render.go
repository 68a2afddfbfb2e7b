package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Options controls terminal rendering of a month.
type Options struct {
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	PostStyle   lipgloss.Style
	TodayStyle  lipgloss.Style
	PastStyle   lipgloss.Style
	ShowTitle   bool
	ShowHeader  bool
	ShowCounts  bool
}

func DefaultOptions() Options {
	return Options{
		TitleStyle:  lipgloss.NewStyle().Bold(true),
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		EmptyStyle:  lipgloss.NewStyle(),
		PostStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		TodayStyle:  lipgloss.NewStyle().Underline(true),
		PastStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ShowTitle:   true,
		ShowHeader:  true,
		ShowCounts:  true,
	}
}

// Render draws m as a multi-line grid. Days with posts show their count when
// ShowCounts is set.
func Render(m Month, opts Options) string {
	var lines []string
	if opts.ShowTitle {
		lines = append(lines, opts.TitleStyle.Render(fmt.Sprintf("%s %d", m.Month, m.Year)))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(strings.Join([]string{"Su  ", "Mo  ", "Tu  ", "We  ", "Th  ", "Fr  ", "Sa"}, " ")))
	}

	for _, week := range m.Weeks() {
		if isBlankWeek(week) {
			continue
		}
		cells := make([]string, 0, len(week))
		for _, day := range week {
			if day == nil {
				cells = append(cells, opts.EmptyStyle.Render("    "))
				continue
			}
			cells = append(cells, renderDay(day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(day *Day, opts Options) string {
	text := fmt.Sprintf("%2d  ", day.Number)
	if opts.ShowCounts && len(day.Posts) > 0 {
		n := len(day.Posts)
		if n > 9 {
			text = fmt.Sprintf("%2d+ ", day.Number)
		} else {
			text = fmt.Sprintf("%2d·%d", day.Number, n)
		}
	}

	style := opts.EmptyStyle
	if len(day.Posts) > 0 {
		style = opts.PostStyle
	}
	if !day.Actionable {
		style = style.Inherit(opts.PastStyle)
	}
	if day.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	return style.Render(text)
}

func isBlankWeek(week []*Day) bool {
	for _, d := range week {
		if d != nil {
			return false
		}
	}
	return true
}
