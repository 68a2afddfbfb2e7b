package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/postplanner/internal/models"
)

var today = time.Date(2025, time.February, 10, 15, 30, 0, 0, time.UTC)

func post(id int64, date string) *models.ScheduledPost {
	return &models.ScheduledPost{ID: id, ScheduledDate: date, ScheduledTime: "09:00", Channel: "Instagram"}
}

func TestBuildMonthDayCounts(t *testing.T) {
	assert.Len(t, BuildMonth(2025, time.February, nil, today).Days, 28)
	assert.Len(t, BuildMonth(2024, time.February, nil, today).Days, 29)
	assert.Len(t, BuildMonth(1900, time.February, nil, today).Days, 28)
	assert.Len(t, BuildMonth(2000, time.February, nil, today).Days, 29)
	assert.Len(t, BuildMonth(2025, time.December, nil, today).Days, 31)
}

func TestBuildMonthLeadingBlanks(t *testing.T) {
	// 1 Feb 2025 is a Saturday, 1 Feb 2024 a Thursday, 1 Jun 2025 a Sunday.
	assert.Equal(t, 6, BuildMonth(2025, time.February, nil, today).LeadingBlanks)
	assert.Equal(t, 4, BuildMonth(2024, time.February, nil, today).LeadingBlanks)
	assert.Equal(t, 0, BuildMonth(2025, time.June, nil, today).LeadingBlanks)
}

func TestBuildMonthBucketsPostsByDate(t *testing.T) {
	posts := []*models.ScheduledPost{
		post(1, "2025-02-14"),
		post(2, "2025-02-14"),
		post(3, "2025-03-14"),
		post(4, "2025-2-14"),
		nil,
	}

	m := BuildMonth(2025, time.February, posts, today)

	day, ok := m.Day("2025-02-14")
	require.True(t, ok)
	require.Len(t, day.Posts, 2)
	assert.Equal(t, int64(1), day.Posts[0].ID)
	assert.Equal(t, int64(2), day.Posts[1].ID)
	assert.Equal(t, 2, m.PostCount())
}

func TestBuildMonthActionable(t *testing.T) {
	m := BuildMonth(2025, time.February, nil, today)

	nine, _ := m.Day("2025-02-09")
	ten, _ := m.Day("2025-02-10")
	eleven, _ := m.Day("2025-02-11")

	assert.False(t, nine.Actionable)
	assert.True(t, ten.Actionable)
	assert.True(t, ten.IsToday)
	assert.True(t, eleven.Actionable)
	assert.False(t, eleven.IsToday)
}

func TestNavigation(t *testing.T) {
	jan := BuildMonth(2025, time.January, nil, today)

	dec := PreviousMonth(jan, nil, today)
	assert.Equal(t, 2024, dec.Year)
	assert.Equal(t, time.December, dec.Month)

	back := NextMonth(dec, nil, today)
	assert.Equal(t, 2025, back.Year)
	assert.Equal(t, time.January, back.Month)

	now := JumpToToday(nil, today)
	assert.Equal(t, 2025, now.Year)
	assert.Equal(t, time.February, now.Month)
}

func TestCellsPadToSixWeeks(t *testing.T) {
	m := BuildMonth(2025, time.February, nil, today)
	cells := m.Cells()

	require.Len(t, cells, 42)
	for i := 0; i < 6; i++ {
		assert.Nil(t, cells[i])
	}
	require.NotNil(t, cells[6])
	assert.Equal(t, 1, cells[6].Number)
	assert.Equal(t, 28, cells[33].Number)
	assert.Nil(t, cells[34])
	assert.Len(t, m.Weeks(), 6)
}

func TestIsBeforeToday(t *testing.T) {
	assert.True(t, IsBeforeToday("2025-02-09", today))
	assert.False(t, IsBeforeToday("2025-02-10", today))
	assert.False(t, IsBeforeToday("2025-03-01", today))
	assert.True(t, IsBeforeToday("not-a-date", today))
}

func TestRenderShowsTitleAndDays(t *testing.T) {
	m := BuildMonth(2025, time.February, []*models.ScheduledPost{post(1, "2025-02-14")}, today)

	out := Render(m, DefaultOptions())

	assert.Contains(t, out, "February 2025")
	assert.Contains(t, out, "28")
	assert.Contains(t, out, "14·1")
	// Feb 2025 spans five week rows plus title and header.
	assert.Equal(t, 7, len(strings.Split(out, "\n")))
}
