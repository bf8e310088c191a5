package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localize/pkg/health"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/locale"
	"github.com/dmitrymomot/localize/pkg/logger"
)

// Default server timeouts.
const (
	defaultAddr              = ":8080"
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 10 * time.Second
	maxBodyBytes             = 1 << 16
)

// RootScope names the root scope in /scopes/{scope} routes.
const RootScope = "_"

// Service is the part of localize.Service exposed over HTTP.
type Service interface {
	Translate(key string, params ...i18n.Param) string
	TranslateCount(key string, count int, params ...i18n.Param) string
	SetLocale(tag string, reload bool, scope string) error
	Refresh() error
	Load(scope string) error
	Unload(scope string)
	Resolution() locale.Resolution
	Available() ([]locale.Locale, error)
	Healthcheck() health.CheckFunc
}

// Server exposes a translation service over HTTP.
type Server struct {
	svc             Service
	logger          *slog.Logger
	extractor       Extractor
	addr            string
	reloadSchedule  string
	shutdownTimeout time.Duration
}

// Option configures the server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithShutdownTimeout bounds the graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithReloadSchedule refreshes the loaded translations on a cron schedule
// ("*/5 * * * *", "@every 1m"). The empty schedule disables reloads.
func WithReloadSchedule(spec string) Option {
	return func(s *Server) {
		s.reloadSchedule = spec
	}
}

// WithLocaleExtractor replaces the chain used by PUT /locale when the body
// names no locale.
func WithLocaleExtractor(e Extractor) Option {
	return func(s *Server) {
		s.extractor = e
	}
}

// New creates a server for svc.
//
// By default PUT /locale without a locale reads the "locale" query
// parameter, then the "lang" cookie, then negotiates Accept-Language
// against the available folders.
func New(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:             svc,
		logger:          logger.NewNope(),
		addr:            defaultAddr,
		shutdownTimeout: defaultShutdownTimeout,
	}
	s.extractor = NewExtractor(
		FromQuery("locale"),
		FromCookie("lang"),
		FromAcceptLanguage(svc.Available),
	)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler with every route mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, Recover(s.logger), Logging(s.logger))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(
		health.Checks{"localization": s.svc.Healthcheck()},
		health.WithLogger(s.logger),
	))

	r.Get("/translate", s.handleTranslate)
	r.Get("/locale", s.handleGetLocale)
	r.Put("/locale", s.handleSetLocale)
	r.Get("/locales", s.handleLocales)
	r.Post("/scopes/{scope}", s.handleLoad)
	r.Delete("/scopes/{scope}", s.handleUnload)

	return r
}

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}
}
