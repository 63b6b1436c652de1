package services

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/tomereli/nutrition-tracker/config"
	"github.com/tomereli/nutrition-tracker/models"
)

// ReportService renders the weekly HTML report: a summary table with colored
// goal/score cells followed by per-day entry tables.
type ReportService struct {
	summaries *SummaryService
	goals     config.Goals
	tmpl      *template.Template
}

func NewReportService(summaries *SummaryService, goals config.Goals) *ReportService {
	return &ReportService{
		summaries: summaries,
		goals:     goals,
		tmpl:      template.Must(template.New("report").Parse(reportTemplate)),
	}
}

type reportEntry struct {
	Time        string
	Description string
	Calories    int
	Protein     int
	Carbs       int
	Fat         int
	Caffeine    int
}

type reportDay struct {
	Weekday string
	Date    string
	Totals  Totals
	Score   int

	CalGoal  int
	ProtGoal int

	CalStyle   template.CSS
	ProtStyle  template.CSS
	ScoreStyle template.CSS

	Entries []reportEntry
}

type reportData struct {
	Start string
	End   string
	Goals config.Goals

	Days []reportDay

	TotalCalories int
	TotalProtein  int
	CalGoalTotal  int
	ProtGoalTotal int
	WeeklyScore   float64

	TotalCalStyle  template.CSS
	TotalProtStyle template.CSS
	AvgScoreStyle  template.CSS
}

// WeeklyReport renders the report for the range. Deterministic for a given
// entry set and range.
func (s *ReportService) WeeklyReport(rng DateRange) ([]byte, error) {
	summaries, err := s.summaries.Summarize(rng)
	if err != nil {
		return nil, err
	}
	grouped, err := s.summaries.EntriesByDate(rng)
	if err != nil {
		return nil, err
	}

	data := reportData{
		Start:       rng.StartKey(),
		End:         rng.EndKey(),
		Goals:       s.goals,
		WeeklyScore: s.summaries.WeeklyScore(summaries),
	}

	for i, day := range rng.Days() {
		sum := summaries[i]
		rd := reportDay{
			Weekday:    day.Weekday().String(),
			Date:       sum.Date,
			Totals:     sum.Totals,
			Score:      sum.Score,
			CalGoal:    s.goals.Calories,
			ProtGoal:   s.goals.Protein,
			CalStyle:   colorCalories(sum.Totals.Calories, s.goals.Calories),
			ProtStyle:  colorProtein(sum.Totals.Protein, s.goals.Protein),
			ScoreStyle: colorScore(float64(sum.Score)),
		}
		for _, e := range grouped[sum.Date] {
			rd.Entries = append(rd.Entries, reportEntry{
				Time:        entryTime(e),
				Description: e.Description,
				Calories:    e.Calories,
				Protein:     e.Protein,
				Carbs:       e.Carbs,
				Fat:         e.Fat,
				Caffeine:    e.Caffeine,
			})
		}
		data.TotalCalories += sum.Totals.Calories
		data.TotalProtein += sum.Totals.Protein
		data.Days = append(data.Days, rd)
	}

	days := len(data.Days)
	data.CalGoalTotal = s.goals.Calories * days
	data.ProtGoalTotal = s.goals.Protein * days
	data.TotalCalStyle = colorCalories(data.TotalCalories, data.CalGoalTotal)
	data.TotalProtStyle = colorProtein(data.TotalProtein, data.ProtGoalTotal)
	data.AvgScoreStyle = colorScore(data.WeeklyScore)

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func entryTime(e models.NutritionEntry) string {
	if i := strings.IndexByte(e.Timestamp, 'T'); i >= 0 && len(e.Timestamp) >= i+6 {
		return e.Timestamp[i+1 : i+6] // hh:mm
	}
	return e.Timestamp
}

func colorCalories(consumed, goal int) template.CSS {
	diff := consumed - goal
	switch {
	case diff <= 100:
		return "background-color:lightgreen;"
	case diff < 500:
		return "background-color:lightyellow;"
	default:
		return "background-color:lightcoral;"
	}
}

func colorProtein(consumed, goal int) template.CSS {
	var ratio float64
	if goal > 0 {
		ratio = float64(consumed) / float64(goal)
	}
	switch {
	case ratio >= 0.9:
		return "background-color:lightgreen;"
	case ratio >= 0.8:
		return "background-color:lightyellow;"
	default:
		return "background-color:lightcoral;"
	}
}

func colorScore(score float64) template.CSS {
	switch {
	case score <= 5:
		return "background-color:lightcoral;"
	case score < 8:
		return "background-color:lightyellow;"
	default:
		return "background-color:lightgreen;"
	}
}

const reportTemplate = `<html><head><meta charset="utf-8"><title>Nutrition Report</title></head><body>
<h1>Nutrition Tracking: {{.Start}} to {{.End}}</h1>
<h2>Weekly Goals</h2><ul>
<li>Calories: {{.Goals.Calories}} (up to {{.Goals.WorkoutCalories}} on workout days)</li>
<li>Protein: {{.Goals.Protein}}g (up to {{.Goals.WorkoutProtein}}g on workout days)</li>
<li>Caffeine: &le;{{.Goals.Caffeine}}mg/day; none after {{.Goals.CaffeineCutoffHour}}:00</li></ul>
<h2>Weekly Summary</h2><table border="1" cellpadding="5" cellspacing="0">
<tr><th>Day</th><th>Date</th><th>Calories</th><th>Protein</th><th>Carbs</th><th>Fat</th><th>Caffeine</th><th>Score</th></tr>
{{range .Days}}<tr><td>{{.Weekday}}</td><td>{{.Date}}</td>
<td style="{{.CalStyle}}">{{.Totals.Calories}}/{{.CalGoal}}</td>
<td style="{{.ProtStyle}}">{{.Totals.Protein}}/{{.ProtGoal}}</td>
<td>{{.Totals.Carbs}}</td><td>{{.Totals.Fat}}</td><td>{{.Totals.Caffeine}}</td>
<td style="{{.ScoreStyle}}">{{.Score}}</td></tr>
{{end}}<tr style="font-weight:bold;"><td colspan="2">Totals</td>
<td style="{{.TotalCalStyle}}">{{.TotalCalories}}/{{.CalGoalTotal}}</td>
<td style="{{.TotalProtStyle}}">{{.TotalProtein}}/{{.ProtGoalTotal}}</td>
<td colspan="3"></td><td style="{{.AvgScoreStyle}}">{{printf "%.1f" .WeeklyScore}}</td></tr></table>
{{range .Days}}{{if .Entries}}<h3>{{.Weekday}}, {{.Date}} (Score: {{.Score}})</h3>
<table border="1" cellpadding="5" cellspacing="0">
<tr><th>Time</th><th>Description</th><th>Cal</th><th>Prot</th><th>Carb</th><th>Fat</th><th>Caf</th></tr>
{{range .Entries}}<tr><td>{{.Time}}</td><td>{{.Description}}</td><td>{{.Calories}}</td><td>{{.Protein}}</td><td>{{.Carbs}}</td><td>{{.Fat}}</td><td>{{.Caffeine}}</td></tr>
{{end}}<tr style="font-weight:bold;"><td colspan="2">Total</td>
<td style="{{.CalStyle}}">{{.Totals.Calories}}/{{.CalGoal}}</td>
<td style="{{.ProtStyle}}">{{.Totals.Protein}}/{{.ProtGoal}}</td>
<td>{{.Totals.Carbs}}</td><td>{{.Totals.Fat}}</td><td>{{.Totals.Caffeine}}</td></tr></table>
{{end}}{{end}}</body></html>`
