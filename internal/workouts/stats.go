package workouts

import (
	"math"
)

type StatsQuery struct {
	Username  string
	Activity  string
	StartDate string
	EndDate   string
}

type Stats struct {
	Activity      string  `json:"activity"`
	TotalDuration float64 `json:"totalDuration"`
	TotalDistance float64 `json:"totalDistance"`
	TotalSteps    int     `json:"totalSteps"`
	TotalCalories int     `json:"totalCalories"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	EntryCount    int     `json:"entryCount"`
	// HasData tells an empty range apart from a range of zero valued entries.
	HasData bool `json:"hasData"`
}

type Totals struct {
	Duration float64
	Distance float64
	Steps    int
	Calories int
	Count    int
}

// Aggregate sums the entries of the given activity. Calories depend on the total duration only.
func Aggregate(catalog *Catalog, activity string, entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		if e.Activity != activity {
			continue
		}
		t.Duration += e.Duration
		t.Distance += e.Distance
		t.Steps += e.Steps
		t.Count++
	}
	t.Calories = Calories(catalog, activity, t.Duration)
	return t
}

func Calories(catalog *Catalog, activity string, duration float64) int {
	return int(math.Round(catalog.CaloriesPerMinute(activity) * duration))
}

type TimeSeriesPoint struct {
	Date     Date    `json:"date"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Steps    int     `json:"steps"`
	Calories int     `json:"calories"`
}

type TimeSeries struct {
	Username  string `json:"username"`
	Activity  string `json:"activity"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	// Metrics names the series worth charting for the activity.
	Metrics        []string          `json:"metrics"`
	TimeSeriesData []TimeSeriesPoint `json:"timeSeriesData"`
}

// BuildTimeSeries returns one point per entry of the activity, in the order given.
func BuildTimeSeries(catalog *Catalog, activity string, entries []Entry) ([]string, []TimeSeriesPoint) {
	metricSet := catalog.MetricsFor(activity)
	metrics := make([]string, 0, len(metricSet)+1)
	for _, m := range metricSet {
		metrics = append(metrics, string(m))
	}
	metrics = append(metrics, "calories")

	points := make([]TimeSeriesPoint, 0, len(entries))
	for _, e := range entries {
		if e.Activity != activity {
			continue
		}
		points = append(points, TimeSeriesPoint{
			Date:     e.Date,
			Duration: e.Duration,
			Distance: e.Distance,
			Steps:    e.Steps,
			Calories: Calories(catalog, activity, e.Duration),
		})
	}
	return metrics, points
}
