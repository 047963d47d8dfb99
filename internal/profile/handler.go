package profile

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/Varshini0817/Ject/internal/apperr"
	"github.com/Varshini0817/Ject/internal/telemetry/metrics"
	"github.com/Varshini0817/Ject/internal/telemetry/tracing"
	"github.com/Varshini0817/Ject/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profilesService interface {
	Create(ctx context.Context, username string, in Input) (*Profile, error)
	Get(ctx context.Context, username string) (*Profile, error)
	Update(ctx context.Context, username string, in Input) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
}

type Handler struct {
	service        profilesService
	metricsManager *metrics.Manager
}

func NewHandler(service profilesService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	username, ok := usernameVar(w, r)
	if !ok {
		return
	}

	p, err := handler.service.Get(ctx, username)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			log.Errorf("get profile [%s]: %s", username, err)
		}
		apperr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.list")
	defer span.End()

	profiles, err := handler.service.List(ctx)
	if err != nil {
		log.Errorf("list profiles: %s", err)
		apperr.Write(w, err)
		return
	}

	pkg.WriteJSON(w, profiles, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.create")
	defer span.End()

	username, ok := usernameVar(w, r)
	if !ok {
		return
	}

	var in Input
	if err := apperr.DecodeJSON(r.Body, &in); err != nil {
		log.Tracef("create profile, unmarshal json params: %s", err)
		apperr.Write(w, err)
		return
	}

	p, err := handler.service.Create(ctx, username, in)
	if err != nil {
		log.Debugf("create profile [%s]: %s", username, err)
		apperr.Write(w, err)
		return
	}

	handler.metricsManager.CounterProfilesSaved.With(prometheus.Labels{"op": "create"}).Inc()
	log.Debugf("profile created: %s", p.Username)
	pkg.WriteJSON(w, p, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	username, ok := usernameVar(w, r)
	if !ok {
		return
	}

	var in Input
	if err := apperr.DecodeJSON(r.Body, &in); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		apperr.Write(w, err)
		return
	}

	p, err := handler.service.Update(ctx, username, in)
	if err != nil {
		if apperr.Status(err) >= http.StatusInternalServerError {
			log.Errorf("update profile [%s]: %s", username, err)
		}
		apperr.Write(w, err)
		return
	}

	handler.metricsManager.CounterProfilesSaved.With(prometheus.Labels{"op": "update"}).Inc()
	pkg.WriteJSON(w, p, http.StatusOK)
}

func usernameVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, err := url.PathUnescape(mux.Vars(r)["username"])
	if err != nil || username == "" {
		pkg.WriteError(w, "invalid username", http.StatusBadRequest)
		return "", false
	}
	return username, true
}
