package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/account"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/apiclient"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/config"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/dashboard"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/docs"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/middleware"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/session"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/metrics"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/telemetry/tracing"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	redisClient *redis.Client // nil when redis is not reachable and not required
	sessions    *session.Container
	apiClient   *apiclient.Client

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("traindiary", "companion", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "traindiary-companion")
	if err != nil {
		return nil, err
	}

	rdb, err := newRedisClient(ctx, cfg, params.RedisPassword)
	if err != nil {
		otelShutdown()
		return nil, err
	}

	store, err := newSessionStore(cfg, rdb)
	if err != nil {
		otelShutdown()
		return nil, err
	}
	sessions := session.NewContainer(store)
	if err := sessions.Rehydrate(ctx); err != nil {
		log.Errorf("rehydrate session: %s", err)
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.RequestTimeout(),
	}
	baseURL := apiclient.ResolveBaseURL(cfg.ApiHost, cfg.SameOrigin)
	log.Debugf("traindiary api: %s", baseURL)

	s := &Server{
		config:         cfg,
		versionInfo:    params.VersionInfo,
		redisClient:    rdb,
		sessions:       sessions,
		apiClient:      apiclient.NewClient(baseURL, tracedHttpClient, sessions, metricsManager),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	s.verifyRehydratedSession(ctx)

	return s, nil
}

// newRedisClient connects to redis. An unreachable redis is only fatal when
// it stores the session, otherwise the login rate limit is disabled.
func newRedisClient(ctx context.Context, cfg *config.Config, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: password,
		DB:       0, // use default DB
	})
	rdb.AddHook(redisotel.NewTracingHook())

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		_ = rdb.Close()
		if cfg.SessionBackend == config.SessionBackendRedis {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Warnf("--> failed to ping redis, login rate limiting disabled: %s", err)
		return nil, nil
	}
	log.Debugf("redis ping: %s", rdbStatus.Val())
	return rdb, nil
}

func newSessionStore(cfg *config.Config, rdb *redis.Client) (session.Store, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		return session.NewMemoryStore(cfg.MemorySessionCacheMB), nil
	case config.SessionBackendRedis:
		if rdb == nil {
			return nil, errors.New("redis session backend without redis client")
		}
		return session.NewRedisStore(rdb), nil
	default:
		path := cfg.SessionFilePath
		if path == "" {
			defaultPath, err := session.DefaultFilePath()
			if err != nil {
				return nil, fmt.Errorf("session file path: %w", err)
			}
			path = defaultPath
		}
		log.Debugf("session file: %s", path)
		return session.NewFileStore(path), nil
	}
}

// verifyRehydratedSession drops a persisted session the API no longer accepts.
// Any other failure keeps the session, the API may just be down.
func (s *Server) verifyRehydratedSession(ctx context.Context) {
	if !s.sessions.IsAuthenticated() {
		return
	}
	user, err := s.apiClient.Verify(ctx)
	switch {
	case apiclient.IsStatus(err, http.StatusUnauthorized), apiclient.IsStatus(err, http.StatusForbidden):
		log.Warnf("stored session rejected by the api, clearing it: %s", err)
		if err := s.sessions.ClearSession(ctx); err != nil {
			log.Errorf("clear rejected session: %s", err)
		}
	case err != nil:
		log.Warnf("verify stored session: %s", err)
	case user != nil:
		if err := s.sessions.SetUser(ctx, user); err != nil {
			log.Errorf("refresh stored session user: %s", err)
		}
	}
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("traindiary-router"))

	var rateLimiter middleware.RequestRateLimiter
	if s.redisClient != nil {
		rateLimiter = redis_rate.NewLimiter(s.redisClient)
	}
	accountHandler := account.NewHandler(s.apiClient, s.sessions, s.versionInfo, s.metricsManager)
	accountHandler.SetupRoutes(r, rateLimiter, s.config.LoginRateLimitAllowedPerMin)

	dashboardHandler := dashboard.NewHandler(
		dashboard.NewService(s.apiClient, s.config.Goals, s.metricsManager),
	)
	dashboardHandler.SetupRoutes(r)

	docsHandler, err := docs.NewHandler(s.config.ApiHost)
	if err != nil {
		return nil, fmt.Errorf("docs handler: %w", err)
	}
	docsHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteError(w, http.StatusNotFound, "not found")
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessions)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(maxRequestBodyBytes))

	return r, nil
}

func (s *Server) Serve(host string, port int) error {
	router, err := s.routerSetup()
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
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
	return nil
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

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

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
