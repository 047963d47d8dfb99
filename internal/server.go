package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/Varshini0817/Ject/internal/config"
	"github.com/Varshini0817/Ject/internal/db"
	"github.com/Varshini0817/Ject/internal/middleware"
	"github.com/Varshini0817/Ject/internal/profile"
	"github.com/Varshini0817/Ject/internal/telemetry/metrics"
	"github.com/Varshini0817/Ject/internal/telemetry/tracing"
	"github.com/Varshini0817/Ject/internal/workouts"
	"github.com/Varshini0817/Ject/pkg"
)

const apiPathPrefix = "/api/user"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	workoutsService *workouts.Service
	profileService  *profile.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	catalog, err := BuildCatalog(params.Config.Activities)
	if err != nil {
		return nil, fmt.Errorf("activity catalog: %w", err)
	}

	location, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, err
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("healthpulse", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "healthpulse-backend", rdb)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	log.Debugf("activity catalog: %d activities, time zone: %s", len(catalog.Activities()), location)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),

		workoutsService: workouts.NewService(workouts.NewServiceParams{
			Repo:     workouts.NewRepo(dbPool),
			Catalog:  catalog,
			Location: location,
		}),
		profileService: profile.NewService(
			profile.NewRepo(dbPool),
			profile.NewCache(params.Config.ProfileCacheSizeMB),
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// BuildCatalog returns the built-in activities extended with the ones from the config.
func BuildCatalog(activities []config.Activity) (*workouts.Catalog, error) {
	defs := make([]workouts.ActivityDef, 0, len(activities))
	for _, a := range activities {
		if a.Name == "" {
			return nil, errors.New("activity with empty name")
		}
		metricSet, err := workouts.ParseMetricSet(a.Metrics)
		if err != nil {
			return nil, fmt.Errorf("activity [%s]: %w", a.Name, err)
		}
		if a.CaloriesPerMinute < 0 {
			return nil, fmt.Errorf("activity [%s]: negative calories per minute", a.Name)
		}
		defs = append(defs, workouts.ActivityDef{
			Name:              a.Name,
			Metrics:           metricSet,
			CaloriesPerMinute: a.CaloriesPerMinute,
		})
	}
	return workouts.DefaultCatalog().With(defs...), nil
}

func (s *Server) routerSetup() *mux.Router {
	// keep %2F and friends in usernames intact, handlers decode path vars themselves
	r := mux.NewRouter().UseEncodedPath()
	r.Use(otelmux.Middleware("healthpulse-router"))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONResponseOK(w, `{"ok":true}`)
	}).Methods("GET", "OPTIONS").Name("health")

	api := r.PathPrefix(apiPathPrefix).Subrouter()

	workoutsHandler := workouts.NewHandler(s.workoutsService, s.metricsManager)
	api.HandleFunc("/activities", workoutsHandler.HandleActivities).Methods("GET", "OPTIONS").Name("list-activities")
	api.HandleFunc("/goals/{username}/{activity}", workoutsHandler.HandleGetGoal).Methods("GET", "OPTIONS").Name("get-goal")
	api.HandleFunc("/goals/{username}", workoutsHandler.HandleSaveGoal).Methods("POST", "OPTIONS").Name("save-goal")
	api.HandleFunc("/workouts/{username}", workoutsHandler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	api.HandleFunc("/summary/{username}", workoutsHandler.HandleSummary).Methods("GET", "OPTIONS").Name("workout-summary")
	api.HandleFunc("/stats/timeseries/{username}/{activity}", workoutsHandler.HandleTimeSeries).Methods("GET", "OPTIONS").Name("stats-timeseries")
	api.HandleFunc("/stats/{username}/{activity}", workoutsHandler.HandleStats).Methods("GET", "OPTIONS").Name("stats")

	entriesRouter := api.PathPrefix("/entries").Subrouter()
	entriesRouter.HandleFunc("/{username}", workoutsHandler.HandleSaveEntry).Methods("POST", "OPTIONS").Name("save-entry")
	entriesRouter.Use(middleware.RateLimit(
		s.rateLimiter,
		"entries",
		s.config.EntriesRateLimitAllowedPerMin,
		s.metricsManager,
	))

	profileHandler := profile.NewHandler(s.profileService, s.metricsManager)
	api.HandleFunc("/profiles", profileHandler.HandleList).Methods("GET", "OPTIONS").Name("list-profiles")
	api.HandleFunc("/profile/{username}", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	api.HandleFunc("/profile/{username}", profileHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-profile")
	api.HandleFunc("/profile/{username}", profileHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteError(w, "not found", http.StatusNotFound)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
