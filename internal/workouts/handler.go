package workouts

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Varshini0817/Ject/internal/apperr"
	"github.com/Varshini0817/Ject/internal/telemetry/metrics"
	"github.com/Varshini0817/Ject/internal/telemetry/tracing"
	"github.com/Varshini0817/Ject/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	RecordEntry(ctx context.Context, username string, in EntryInput) (*Entry, error)
	SetGoal(ctx context.Context, username string, in GoalInput) (_ *Goal, created bool, err error)
	GetGoal(ctx context.Context, username, activity string) (*Goal, error)
	ListEntries(ctx context.Context, username string) ([]Entry, error)
	Summary(ctx context.Context, username string) (*Summary, error)
	GetStats(ctx context.Context, q StatsQuery) (*Stats, error)
	GetTimeSeries(ctx context.Context, q StatsQuery) (*TimeSeries, error)
	Activities() []ActivityDef
}

type GetGoalResponse struct {
	HasGoal bool  `json:"hasGoal"`
	Goal    *Goal `json:"goal,omitempty"`
}

type SaveGoalResponse struct {
	Message string `json:"message"`
	Goal    *Goal  `json:"goal"`
}

type SaveEntryResponse struct {
	Message string `json:"message"`
	Entry   *Entry `json:"entry"`
}

type Handler struct {
	service        workoutsService
	metricsManager *metrics.Manager
}

func NewHandler(service workoutsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getgoal")
	defer span.End()

	username, activity, ok := userAndActivity(w, r)
	if !ok {
		return
	}

	goal, err := handler.service.GetGoal(ctx, username, activity)
	switch {
	case err == nil:
		pkg.WriteJSON(w, GetGoalResponse{HasGoal: true, Goal: goal}, http.StatusOK)
	case errors.Is(err, apperr.ErrNotFound):
		pkg.WriteJSON(w, GetGoalResponse{HasGoal: false}, http.StatusOK)
	default:
		log.Errorf("get goal [%s] [%s]: %s", username, activity, err)
		apperr.Write(w, err)
	}
}

func (handler *Handler) HandleSaveGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.savegoal")
	defer span.End()

	username, ok := pathVar(w, r, "username")
	if !ok {
		return
	}

	var in GoalInput
	if err := apperr.DecodeJSON(r.Body, &in); err != nil {
		log.Tracef("save goal, unmarshal json params: %s", err)
		apperr.Write(w, err)
		return
	}

	goal, created, err := handler.service.SetGoal(ctx, username, in)
	if err != nil {
		log.Errorf("save goal [%s] [%s]: %s", username, in.Activity, err)
		apperr.Write(w, err)
		return
	}

	handler.metricsManager.CounterGoalsSaved.With(prometheus.Labels{
		"activity": goal.Activity,
		"created":  strconv.FormatBool(created),
	}).Inc()

	message := "Goal updated"
	if created {
		message = "Goal saved"
	}
	pkg.WriteJSON(w, SaveGoalResponse{Message: message, Goal: goal}, http.StatusOK)
}

func (handler *Handler) HandleSaveEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.saveentry")
	defer span.End()

	username, ok := pathVar(w, r, "username")
	if !ok {
		return
	}

	var in EntryInput
	if err := apperr.DecodeJSON(r.Body, &in); err != nil {
		log.Tracef("save entry, unmarshal json params: %s", err)
		handler.entryRejected("bad_request")
		apperr.Write(w, err)
		return
	}

	entry, err := handler.service.RecordEntry(ctx, username, in)
	if err != nil {
		handler.entryRejected(rejectReason(err))
		if apperr.Status(err) >= http.StatusInternalServerError {
			log.Errorf("save entry [%s] [%s] [%s]: %s", username, in.Activity, in.Date, err)
		} else {
			log.Debugf("entry rejected [%s] [%s] [%s]: %s", username, in.Activity, in.Date, err)
		}
		apperr.Write(w, err)
		return
	}

	handler.metricsManager.CounterEntriesRecorded.With(prometheus.Labels{"activity": entry.Activity}).Inc()
	pkg.WriteJSON(w, SaveEntryResponse{Message: "Entry saved", Entry: entry}, http.StatusOK)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	username, ok := pathVar(w, r, "username")
	if !ok {
		return
	}

	entries, err := handler.service.ListEntries(ctx, username)
	if err != nil {
		log.Errorf("list workouts [%s]: %s", username, err)
		apperr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.summary")
	defer span.End()

	username, ok := pathVar(w, r, "username")
	if !ok {
		return
	}

	summary, err := handler.service.Summary(ctx, username)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			log.Errorf("workout summary [%s]: %s", username, err)
		}
		apperr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	q, ok := statsQuery(w, r)
	if !ok {
		return
	}

	stats, err := handler.service.GetStats(ctx, q)
	if err != nil {
		if apperr.Status(err) >= http.StatusInternalServerError {
			log.Errorf("stats [%s] [%s]: %s", q.Username, q.Activity, err)
		}
		apperr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (handler *Handler) HandleTimeSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.timeseries")
	defer span.End()

	q, ok := statsQuery(w, r)
	if !ok {
		return
	}

	series, err := handler.service.GetTimeSeries(ctx, q)
	if err != nil {
		if apperr.Status(err) >= http.StatusInternalServerError {
			log.Errorf("time series [%s] [%s]: %s", q.Username, q.Activity, err)
		}
		apperr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, series, http.StatusOK)
}

func (handler *Handler) HandleActivities(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, handler.service.Activities(), http.StatusOK)
}

func (handler *Handler) entryRejected(reason string) {
	handler.metricsManager.CounterEntriesRejected.With(prometheus.Labels{"reason": reason}).Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrGoalMissing):
		return "goal_missing"
	case errors.Is(err, ErrDuplicateEntry):
		return "duplicate"
	case errors.Is(err, ErrFutureDate):
		return "future_date"
	case errors.Is(err, apperr.ErrValidation):
		return "validation"
	case errors.Is(err, apperr.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "internal"
	}
}

func statsQuery(w http.ResponseWriter, r *http.Request) (StatsQuery, bool) {
	username, activity, ok := userAndActivity(w, r)
	if !ok {
		return StatsQuery{}, false
	}
	return StatsQuery{
		Username:  username,
		Activity:  activity,
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}, true
}

func userAndActivity(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	username, ok := pathVar(w, r, "username")
	if !ok {
		return "", "", false
	}
	activity, ok := pathVar(w, r, "activity")
	if !ok {
		return "", "", false
	}
	return username, activity, true
}

// pathVar returns the percent-decoded path variable. The router keeps paths encoded,
// so "John%20Doe" arrives here as is.
func pathVar(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := mux.Vars(r)[name]
	value, err := url.PathUnescape(raw)
	if err != nil || value == "" {
		pkg.WriteError(w, "invalid "+name, http.StatusBadRequest)
		return "", false
	}
	return value, true
}
