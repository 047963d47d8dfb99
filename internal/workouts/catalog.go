package workouts

import (
	"fmt"
	"slices"
)

type Metric string

const (
	MetricDuration Metric = "duration"
	MetricDistance Metric = "distance"
	MetricSteps    Metric = "steps"
)

const defaultCaloriesPerMinute = 5

// MetricSet lists the metrics meaningful for an activity.
type MetricSet []Metric

var AllMetrics = MetricSet{MetricDuration, MetricDistance, MetricSteps}

func (ms MetricSet) Has(m Metric) bool {
	return slices.Contains(ms, m)
}

func ParseMetricSet(names []string) (MetricSet, error) {
	set := make(MetricSet, 0, len(names))
	for _, n := range names {
		m := Metric(n)
		if !AllMetrics.Has(m) {
			return nil, fmt.Errorf("unknown metric [%s]", n)
		}
		if !set.Has(m) {
			set = append(set, m)
		}
	}
	if !set.Has(MetricDuration) {
		set = append(MetricSet{MetricDuration}, set...)
	}
	return set, nil
}

type ActivityDef struct {
	Name              string    `json:"name"`
	Metrics           MetricSet `json:"metrics"`
	CaloriesPerMinute float64   `json:"caloriesPerMinute"`
}

// Catalog is the read-only set of activities the service knows about.
type Catalog struct {
	defs   []ActivityDef
	byName map[string]int
}

// NewCatalog builds a catalog from defs, in order. A later def with an already used name replaces the earlier one.
func NewCatalog(defs ...ActivityDef) *Catalog {
	c := &Catalog{
		byName: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		d.Metrics = slices.Clone(d.Metrics)
		if i, ok := c.byName[d.Name]; ok {
			c.defs[i] = d
			continue
		}
		c.byName[d.Name] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(defaultActivities()...)
}

func defaultActivities() []ActivityDef {
	return []ActivityDef{
		{Name: "Running", Metrics: MetricSet{MetricDuration, MetricDistance}, CaloriesPerMinute: 10},
		{Name: "Cycling", Metrics: MetricSet{MetricDuration, MetricDistance}, CaloriesPerMinute: 8},
		{Name: "Skipping", Metrics: MetricSet{MetricDuration, MetricSteps}, CaloriesPerMinute: 9},
		{Name: "Walking", Metrics: MetricSet{MetricDuration, MetricDistance, MetricSteps}, CaloriesPerMinute: 4},
		{Name: "Gym", Metrics: MetricSet{MetricDuration}, CaloriesPerMinute: 6},
		{Name: "Hiking", Metrics: MetricSet{MetricDuration, MetricDistance}, CaloriesPerMinute: 7},
		{Name: "Yoga", Metrics: MetricSet{MetricDuration}, CaloriesPerMinute: 3},
	}
}

// With returns a new catalog holding the current activities plus defs.
func (c *Catalog) With(defs ...ActivityDef) *Catalog {
	return NewCatalog(append(c.Activities(), defs...)...)
}

func (c *Catalog) Known(activity string) bool {
	_, ok := c.byName[activity]
	return ok
}

// MetricsFor returns the applicable metrics. Unknown activities get all of them.
func (c *Catalog) MetricsFor(activity string) MetricSet {
	i, ok := c.byName[activity]
	if !ok {
		return slices.Clone(AllMetrics)
	}
	return slices.Clone(c.defs[i].Metrics)
}

func (c *Catalog) CaloriesPerMinute(activity string) float64 {
	i, ok := c.byName[activity]
	if !ok {
		return defaultCaloriesPerMinute
	}
	return c.defs[i].CaloriesPerMinute
}

// Apply zeroes the metrics that do not apply to the activity.
func (c *Catalog) Apply(activity string, m Metrics) Metrics {
	set := c.MetricsFor(activity)
	if !set.Has(MetricDuration) {
		m.Duration = 0
	}
	if !set.Has(MetricDistance) {
		m.Distance = 0
	}
	if !set.Has(MetricSteps) {
		m.Steps = 0
	}
	return m
}

func (c *Catalog) Activities() []ActivityDef {
	defs := make([]ActivityDef, len(c.defs))
	for i, d := range c.defs {
		d.Metrics = slices.Clone(d.Metrics)
		defs[i] = d
	}
	return defs
}
