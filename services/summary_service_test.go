package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomereli/nutrition-tracker/config"
)

var testGoals = config.Goals{Calories: 1600, Protein: 160, Caffeine: 400}

func newTestSummary(t *testing.T) (*SummaryService, *EntryStore) {
	t.Helper()
	store := newTestStore(t)
	return NewSummaryService(store, testGoals), store
}

func TestSummarizeSumsPerDay(t *testing.T) {
	svc, store := newTestSummary(t)

	_, err := store.Add(entryReq("2024-01-01T08:00:00", "oatmeal", 300, 10))
	require.NoError(t, err)
	_, err = store.Add(EntryRequest{
		Timestamp:   "2024-01-01T12:30:00",
		Description: "chicken salad",
		Calories:    intp(450),
		Protein:     intp(40),
		Carbs:       20,
		Fat:         15,
		Caffeine:    80,
	})
	require.NoError(t, err)

	summaries, err := svc.Summarize(mustRange(t, "2024-01-01", "2024-01-01"))
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	day := summaries[0]
	assert.Equal(t, "2024-01-01", day.Date)
	assert.Equal(t, 2, day.EntryCount)
	assert.Equal(t, Totals{Calories: 750, Protein: 50, Carbs: 20, Fat: 15, Caffeine: 80}, day.Totals)
	assert.Equal(t, StatusUnder, day.Status["calories"])
	assert.Equal(t, StatusUnder, day.Status["protein"])
	assert.Equal(t, StatusUnder, day.Status["caffeine"])
}

func TestScoreIsTenOnlyWhenAllGoalsMetExactly(t *testing.T) {
	svc, _ := newTestSummary(t)

	exact := Totals{Calories: 1600, Protein: 160, Caffeine: 400}
	assert.Equal(t, 10, svc.DailyScore(exact))

	for _, tc := range []Totals{
		{Calories: 1601, Protein: 160, Caffeine: 400},
		{Calories: 1600, Protein: 159, Caffeine: 400},
		{Calories: 1600, Protein: 160, Caffeine: 500},
	} {
		assert.Less(t, svc.DailyScore(tc), 10, "totals %+v", tc)
	}
}

func TestScoreDecreasesMonotonicallyWithDeviation(t *testing.T) {
	svc, _ := newTestSummary(t)

	prev := 11
	for _, calories := range []int{1600, 1800, 2400, 3200, 4000} {
		score := svc.DailyScore(Totals{Calories: calories, Protein: 160, Caffeine: 400})
		assert.LessOrEqual(t, score, prev, "calories %d", calories)
		assert.GreaterOrEqual(t, score, 1)
		prev = score
	}
}

func TestScoreClampsToOne(t *testing.T) {
	svc, _ := newTestSummary(t)

	assert.Equal(t, 1, svc.DailyScore(Totals{}))
	assert.Equal(t, 1, svc.DailyScore(Totals{Calories: 10000, Protein: 1000, Caffeine: 2000}))
}

func TestStatusIsExactEquality(t *testing.T) {
	assert.Equal(t, StatusUnder, statusFor(1599, 1600))
	assert.Equal(t, StatusMet, statusFor(1600, 1600))
	assert.Equal(t, StatusOver, statusFor(1601, 1600))
}

func TestSummarizeIncludesEmptyDays(t *testing.T) {
	svc, store := newTestSummary(t)

	_, err := store.Add(entryReq("2024-01-02T08:00:00", "oatmeal", 300, 10))
	require.NoError(t, err)

	summaries, err := svc.Summarize(mustRange(t, "2024-01-01", "2024-01-03"))
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, "2024-01-01", summaries[0].Date)
	assert.Zero(t, summaries[0].EntryCount)
	assert.Zero(t, summaries[0].Score)
	assert.Equal(t, Totals{}, summaries[0].Totals)

	assert.Equal(t, 1, summaries[1].EntryCount)
	assert.GreaterOrEqual(t, summaries[1].Score, 1)
}

func TestWeeklyScoreExcludesEmptyDays(t *testing.T) {
	svc, store := newTestSummary(t)

	// One perfect day among empty ones.
	_, err := store.Add(EntryRequest{
		Timestamp:   "2024-01-02T08:00:00",
		Description: "meal plan",
		Calories:    intp(1600),
		Protein:     intp(160),
		Caffeine:    400,
	})
	require.NoError(t, err)

	summaries, err := svc.Summarize(mustRange(t, "2024-01-01", "2024-01-07"))
	require.NoError(t, err)
	assert.Equal(t, 10.0, svc.WeeklyScore(summaries))
}

func TestWeeklyScoreZeroWhenNoEntries(t *testing.T) {
	svc, _ := newTestSummary(t)

	summaries, err := svc.Summarize(mustRange(t, "2024-01-01", "2024-01-07"))
	require.NoError(t, err)
	assert.Zero(t, svc.WeeklyScore(summaries))
}

func TestSummarizeIsIdempotent(t *testing.T) {
	svc, store := newTestSummary(t)

	_, err := store.Add(entryReq("2024-01-01T08:00:00", "oatmeal", 300, 10))
	require.NoError(t, err)
	_, err = store.Add(entryReq("2024-01-03T19:00:00", "dinner", 700, 45))
	require.NoError(t, err)

	rng := mustRange(t, "2024-01-01", "2024-01-07")
	first, err := svc.Summarize(rng)
	require.NoError(t, err)
	second, err := svc.Summarize(rng)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
