package services

import (
	"math"

	"github.com/tomereli/nutrition-tracker/config"
	"github.com/tomereli/nutrition-tracker/models"
)

type GoalStatus string

const (
	StatusUnder GoalStatus = "under"
	StatusMet   GoalStatus = "met"
	StatusOver  GoalStatus = "over"
)

type Totals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Caffeine int `json:"caffeine"`
}

// DailySummary is derived on every query, never stored. Score is 0 on days
// with no entries; scored days are always in [1, 10].
type DailySummary struct {
	Date       string                `json:"date"`
	Totals     Totals                `json:"totals"`
	EntryCount int                   `json:"entry_count"`
	Score      int                   `json:"score"`
	Status     map[string]GoalStatus `json:"status"`
}

// SummaryService groups entries by calendar date and scores each day against
// the configured goals.
type SummaryService struct {
	store *EntryStore
	goals config.Goals
}

func NewSummaryService(store *EntryStore, goals config.Goals) *SummaryService {
	return &SummaryService{store: store, goals: goals}
}

// EntriesByDate groups the range's entries by date key. Dates without
// entries are absent from the result.
func (s *SummaryService) EntriesByDate(rng DateRange) (map[string][]models.NutritionEntry, error) {
	entries, err := s.store.Query(rng)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.NutritionEntry)
	for _, e := range entries {
		grouped[e.Date] = append(grouped[e.Date], e)
	}
	return grouped, nil
}

// Summarize produces one DailySummary per date in the range, in range order.
// Days without entries are included with zero totals and score 0.
func (s *SummaryService) Summarize(rng DateRange) ([]DailySummary, error) {
	grouped, err := s.EntriesByDate(rng)
	if err != nil {
		return nil, err
	}

	days := rng.Days()
	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		key := day.Format(dateLayout)
		entries := grouped[key]

		var t Totals
		for _, e := range entries {
			t.Calories += e.Calories
			t.Protein += e.Protein
			t.Carbs += e.Carbs
			t.Fat += e.Fat
			t.Caffeine += e.Caffeine
		}

		score := 0
		if len(entries) > 0 {
			score = s.DailyScore(t)
		}

		summaries = append(summaries, DailySummary{
			Date:       key,
			Totals:     t,
			EntryCount: len(entries),
			Score:      score,
			Status: map[string]GoalStatus{
				"calories": statusFor(t.Calories, s.goals.Calories),
				"protein":  statusFor(t.Protein, s.goals.Protein),
				"caffeine": statusFor(t.Caffeine, s.goals.Caffeine),
			},
		})
	}
	return summaries, nil
}

// DailyScore maps the day's totals to 1..10. Each of the calories, protein
// and caffeine sums contributes max(0, 10*(1 - |sum-goal|/goal)); the score
// is the floored mean of the three, clamped to [1, 10]. Exactly 10 only when
// all three sums equal their goals.
func (s *SummaryService) DailyScore(t Totals) int {
	mean := (goalComponent(t.Calories, s.goals.Calories) +
		goalComponent(t.Protein, s.goals.Protein) +
		goalComponent(t.Caffeine, s.goals.Caffeine)) / 3

	score := int(math.Floor(mean))
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// WeeklyScore averages the daily scores of days that have entries, rounded
// to two decimals. 0 when no day in the range has entries.
func (s *SummaryService) WeeklyScore(summaries []DailySummary) float64 {
	total, days := 0, 0
	for _, d := range summaries {
		if d.EntryCount > 0 {
			total += d.Score
			days++
		}
	}
	if days == 0 {
		return 0
	}
	return round2(float64(total) / float64(days))
}

func goalComponent(sum, goal int) float64 {
	if goal <= 0 {
		if sum == 0 {
			return 10
		}
		return 0
	}
	dev := math.Abs(float64(sum-goal)) / float64(goal)
	if dev >= 1 {
		return 0
	}
	return 10 * (1 - dev)
}

func statusFor(sum, goal int) GoalStatus {
	switch {
	case sum < goal:
		return StatusUnder
	case sum > goal:
		return StatusOver
	default:
		return StatusMet
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
