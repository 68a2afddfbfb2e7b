// Package calendar builds month grids of scheduled posts.
package calendar

import (
	"fmt"
	"time"

	"github.com/maheshrc27/postplanner/internal/models"
)

const gridCells = 6 * 7

// Day is a single date cell of a month.
type Day struct {
	Date       string                  `json:"date"`
	Number     int                     `json:"day"`
	Posts      []*models.ScheduledPost `json:"posts"`
	IsToday    bool                    `json:"is_today"`
	Actionable bool                    `json:"actionable"`
}

// Month is derived on every navigation and never persisted.
type Month struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leading_blanks"`
	Days          []Day      `json:"days"`
}

// BuildMonth lays out year/month and buckets posts by their scheduled date.
// Dates are matched as YYYY-MM-DD strings with no zone conversion.
func BuildMonth(year int, month time.Month, posts []*models.ScheduledPost, today time.Time) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// normalise out-of-range months such as 13 or 0
	year, month = first.Year(), first.Month()
	daysInMonth := daysIn(first)

	byDate := make(map[string][]*models.ScheduledPost)
	for _, p := range posts {
		if p == nil {
			continue
		}
		byDate[p.ScheduledDate] = append(byDate[p.ScheduledDate], p)
	}

	todayKey := DateKey(today)
	days := make([]Day, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		days = append(days, Day{
			Date:       key,
			Number:     d,
			Posts:      byDate[key],
			IsToday:    key == todayKey,
			Actionable: key >= todayKey,
		})
	}

	return Month{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          days,
	}
}

func PreviousMonth(m Month, posts []*models.ScheduledPost, today time.Time) Month {
	return BuildMonth(m.Year, m.Month-1, posts, today)
}

func NextMonth(m Month, posts []*models.ScheduledPost, today time.Time) Month {
	return BuildMonth(m.Year, m.Month+1, posts, today)
}

func JumpToToday(posts []*models.ScheduledPost, today time.Time) Month {
	return BuildMonth(today.Year(), today.Month(), posts, today)
}

// Cells pads the month to a fixed 6x7 grid; blank cells are nil.
func (m Month) Cells() []*Day {
	cells := make([]*Day, gridCells)
	for i := range m.Days {
		idx := m.LeadingBlanks + i
		if idx >= gridCells {
			break
		}
		cells[idx] = &m.Days[i]
	}
	return cells
}

// Weeks splits Cells into rows of seven.
func (m Month) Weeks() [][]*Day {
	cells := m.Cells()
	weeks := make([][]*Day, 0, 6)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// Day returns the cell for date, if it lies in this month.
func (m Month) Day(date string) (*Day, bool) {
	for i := range m.Days {
		if m.Days[i].Date == date {
			return &m.Days[i], true
		}
	}
	return nil, false
}

func (m Month) PostCount() int {
	n := 0
	for _, d := range m.Days {
		n += len(d.Posts)
	}
	return n
}

// DateKey formats t as a calendar date in t's own location.
func DateKey(t time.Time) string {
	return t.Format(models.DateLayout)
}

// IsBeforeToday compares calendar dates only; malformed dates count as past.
func IsBeforeToday(date string, today time.Time) bool {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return true
	}
	return DateKey(d) < DateKey(today)
}

func daysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}
