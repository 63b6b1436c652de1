package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomereli/nutrition-tracker/config"
)

var reportGoals = config.Goals{
	Calories: 1600, Protein: 160, Caffeine: 400,
	WorkoutCalories: 1800, WorkoutProtein: 210, CaffeineCutoffHour: 19,
}

func newTestReport(t *testing.T) (*ReportService, *EntryStore) {
	t.Helper()
	store := newTestStore(t)
	summary := NewSummaryService(store, reportGoals)
	return NewReportService(summary, reportGoals), store
}

func TestWeeklyReportStructure(t *testing.T) {
	svc, store := newTestReport(t)

	_, err := store.Add(EntryRequest{
		Timestamp:   "2024-01-01T08:00:00",
		Description: "meal plan",
		Calories:    intp(1600),
		Protein:     intp(160),
		Caffeine:    400,
	})
	require.NoError(t, err)

	out, err := svc.WeeklyReport(mustRange(t, "2024-01-01", "2024-01-07"))
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<html>")
	assert.Contains(t, html, "Nutrition Tracking: 2024-01-01 to 2024-01-07")
	assert.Contains(t, html, "Monday")
	assert.Contains(t, html, "meal plan")
	assert.Contains(t, html, "(Score: 10)")
	assert.Contains(t, html, "background-color:lightgreen;")
	assert.Contains(t, html, "1600/1600")
	// Goal header carries the workout-day variants and caffeine cutoff.
	assert.Contains(t, html, "up to 1800 on workout days")
	assert.Contains(t, html, "none after 19:00")
}

func TestWeeklyReportEscapesDescriptions(t *testing.T) {
	svc, store := newTestReport(t)

	_, err := store.Add(entryReq("2024-01-01T08:00:00", `<script>alert("x")</script>`, 300, 10))
	require.NoError(t, err)

	out, err := svc.WeeklyReport(mustRange(t, "2024-01-01", "2024-01-01"))
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestWeeklyReportOmitsDetailTablesForEmptyDays(t *testing.T) {
	svc, store := newTestReport(t)

	_, err := store.Add(entryReq("2024-01-02T08:00:00", "oatmeal", 300, 10))
	require.NoError(t, err)

	out, err := svc.WeeklyReport(mustRange(t, "2024-01-01", "2024-01-03"))
	require.NoError(t, err)
	html := string(out)

	// Summary table lists all three days, detail section only the one with entries.
	assert.Contains(t, html, "<td>2024-01-01</td>")
	assert.Contains(t, html, "<td>2024-01-03</td>")
	assert.Contains(t, html, "Tuesday, 2024-01-02")
	assert.NotContains(t, html, "Monday, 2024-01-01")
}

func TestWeeklyReportIsDeterministic(t *testing.T) {
	svc, store := newTestReport(t)

	_, err := store.Add(entryReq("2024-01-01T08:00:00", "oatmeal", 300, 10))
	require.NoError(t, err)
	_, err = store.Add(entryReq("2024-01-02T19:30:00", "dinner", 700, 45))
	require.NoError(t, err)

	rng := mustRange(t, "2024-01-01", "2024-01-07")
	first, err := svc.WeeklyReport(rng)
	require.NoError(t, err)
	second, err := svc.WeeklyReport(rng)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestColorBands(t *testing.T) {
	assert.Equal(t, "background-color:lightgreen;", string(colorCalories(1700, 1600)))
	assert.Equal(t, "background-color:lightyellow;", string(colorCalories(2000, 1600)))
	assert.Equal(t, "background-color:lightcoral;", string(colorCalories(2200, 1600)))

	assert.Equal(t, "background-color:lightgreen;", string(colorProtein(144, 160)))
	assert.Equal(t, "background-color:lightyellow;", string(colorProtein(130, 160)))
	assert.Equal(t, "background-color:lightcoral;", string(colorProtein(100, 160)))

	assert.Equal(t, "background-color:lightcoral;", string(colorScore(5)))
	assert.Equal(t, "background-color:lightyellow;", string(colorScore(7)))
	assert.Equal(t, "background-color:lightgreen;", string(colorScore(8)))
}
