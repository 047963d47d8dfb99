package workouts

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Varshini0817/Ject/internal/apperr"
	"github.com/Varshini0817/Ject/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	GetUser(ctx context.Context, username string) (*User, error)
	UserExists(ctx context.Context, username string) (bool, error)
	GetGoal(ctx context.Context, username, activity string) (*Goal, error)
	ListGoals(ctx context.Context, username string) ([]Goal, error)
	UpsertGoal(ctx context.Context, goal Goal, attrs UserAttrs) (_ *Goal, created bool, err error)
	AddEntry(ctx context.Context, entry Entry) (*Entry, error)
	ListEntries(ctx context.Context, params EntryParams) ([]Entry, error)
}

type Service struct {
	repo     workoutsRepo
	catalog  *Catalog
	location *time.Location
	now      func() time.Time
}

type NewServiceParams struct {
	Repo    workoutsRepo
	Catalog *Catalog
	// Location decides which calendar day "today" is. Defaults to UTC.
	Location *time.Location
	Now      func() time.Time
}

func NewService(params NewServiceParams) *Service {
	s := &Service{
		repo:     params.Repo,
		catalog:  params.Catalog,
		location: params.Location,
		now:      params.Now,
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

func (s *Service) Activities() []ActivityDef {
	return s.catalog.Activities()
}

func (s *Service) today() Date {
	return DateOf(s.now().In(s.location))
}

// RecordEntry logs one workout. The activity must have a goal set, and only one entry
// per user, activity and day is accepted.
func (s *Service) RecordEntry(ctx context.Context, username string, in EntryInput) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.recordentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity", in.Activity))

	if strings.TrimSpace(username) == "" {
		return nil, apperr.Validation("username is required")
	}
	if !s.catalog.Known(in.Activity) {
		return nil, ErrUnknownActivity
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if date.After(s.today().Time) {
		return nil, ErrFutureDate
	}

	if err := validateMetrics(in.Metrics); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetGoal(ctx, username, in.Activity); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			return nil, ErrGoalMissing
		}
		return nil, err
	}

	return s.repo.AddEntry(ctx, Entry{
		Username: username,
		Activity: in.Activity,
		Date:     date,
		Metrics:  s.catalog.Apply(in.Activity, in.Metrics),
	})
}

// SetGoal stores the goal for the activity, replacing every metric of a previous one.
func (s *Service) SetGoal(ctx context.Context, username string, in GoalInput) (_ *Goal, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.setgoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity", in.Activity))

	if strings.TrimSpace(username) == "" {
		return nil, false, apperr.Validation("username is required")
	}
	if strings.TrimSpace(in.Activity) == "" {
		return nil, false, apperr.Validation("activity is required")
	}
	if !s.catalog.Known(in.Activity) {
		return nil, false, ErrUnknownActivity
	}
	if err := validateMetrics(in.Metrics); err != nil {
		return nil, false, err
	}
	if err := validateUserAttrs(in.UserAttrs); err != nil {
		return nil, false, err
	}

	return s.repo.UpsertGoal(ctx, Goal{
		Username: username,
		Activity: in.Activity,
		Metrics:  s.catalog.Apply(in.Activity, in.Metrics),
	}, in.UserAttrs)
}

func (s *Service) GetGoal(ctx context.Context, username, activity string) (*Goal, error) {
	return s.repo.GetGoal(ctx, username, activity)
}

// ListEntries returns every entry of the user, empty for unknown users.
func (s *Service) ListEntries(ctx context.Context, username string) ([]Entry, error) {
	return s.repo.ListEntries(ctx, EntryParams{Username: username})
}

func (s *Service) Summary(ctx context.Context, username string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListGoals(ctx, username)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListEntries(ctx, EntryParams{Username: username})
	if err != nil {
		return nil, err
	}

	return &Summary{
		Username:   user.Username,
		Age:        user.Age,
		Height:     user.Height,
		Weight:     user.Weight,
		Goals:      goals,
		Activities: entries,
	}, nil
}

// GetStats sums the entries of one activity within [StartDate, EndDate], both ends included.
// A reversed range matches nothing.
func (s *Service) GetStats(ctx context.Context, q StatsQuery) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity", q.Activity))

	entries, err := s.entriesInRange(ctx, q)
	if err != nil {
		return nil, err
	}

	totals := Aggregate(s.catalog, q.Activity, entries)
	return &Stats{
		Activity:      q.Activity,
		TotalDuration: totals.Duration,
		TotalDistance: totals.Distance,
		TotalSteps:    totals.Steps,
		TotalCalories: totals.Calories,
		StartDate:     q.StartDate,
		EndDate:       q.EndDate,
		EntryCount:    totals.Count,
		HasData:       totals.Count > 0,
	}, nil
}

func (s *Service) GetTimeSeries(ctx context.Context, q StatsQuery) (_ *TimeSeries, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.timeseries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity", q.Activity))

	entries, err := s.entriesInRange(ctx, q)
	if err != nil {
		return nil, err
	}

	metrics, points := BuildTimeSeries(s.catalog, q.Activity, entries)
	return &TimeSeries{
		Username:       q.Username,
		Activity:       q.Activity,
		StartDate:      q.StartDate,
		EndDate:        q.EndDate,
		Metrics:        metrics,
		TimeSeriesData: points,
	}, nil
}

func (s *Service) entriesInRange(ctx context.Context, q StatsQuery) ([]Entry, error) {
	if strings.TrimSpace(q.StartDate) == "" || strings.TrimSpace(q.EndDate) == "" {
		return nil, ErrMissingRange
	}
	from, err := ParseDate(q.StartDate)
	if err != nil {
		return nil, ErrInvalidRange
	}
	to, err := ParseDate(q.EndDate)
	if err != nil {
		return nil, ErrInvalidRange
	}

	exists, err := s.repo.UserExists(ctx, q.Username)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if from.After(to.Time) {
		return []Entry{}, nil
	}

	return s.repo.ListEntries(ctx, EntryParams{
		Username: q.Username,
		Activity: q.Activity,
		From:     &from,
		To:       &to,
	})
}

func validateMetrics(m Metrics) error {
	if math.IsNaN(m.Duration) || math.IsInf(m.Duration, 0) || m.Duration < 0 {
		return apperr.Validation("duration must be a non-negative number")
	}
	if math.IsNaN(m.Distance) || math.IsInf(m.Distance, 0) || m.Distance < 0 {
		return apperr.Validation("distance must be a non-negative number")
	}
	if m.Steps < 0 {
		return apperr.Validation("steps must be a non-negative number")
	}
	return nil
}

func validateUserAttrs(a UserAttrs) error {
	if a.Age != nil && *a.Age < 0 {
		return apperr.Validation("age must be a non-negative number")
	}
	if a.Height != nil && (math.IsNaN(*a.Height) || math.IsInf(*a.Height, 0) || *a.Height < 0) {
		return apperr.Validation("height must be a non-negative number")
	}
	if a.Weight != nil && (math.IsNaN(*a.Weight) || math.IsInf(*a.Weight, 0) || *a.Weight < 0) {
		return apperr.Validation("weight must be a non-negative number")
	}
	return nil
}
