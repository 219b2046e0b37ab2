package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	_ "agsys/docs"
	"agsys/internal/application/middleware"
	"agsys/pkg/log"
	"agsys/pkg/msg"
)

// Options configures a Server.
type Options struct {
	ServiceName     string
	Address         string
	ContextPath     string
	ShutdownTimeout time.Duration
	// Tracing wraps every request in an OpenTelemetry server span.
	Tracing bool
}

// Server is the echo instance shared by every service, with probes, metrics and docs wired in.
type Server struct {
	opts    Options
	echo    *echo.Echo
	api     *echo.Group
	metrics *middleware.Metrics

	mu      sync.Mutex
	closers []closer
}

type closer struct {
	name string
	fn   func(ctx context.Context) error
}

func New(opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	opts.ContextPath = strings.TrimRight(opts.ContextPath, "/")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	s := &Server{
		opts:    opts,
		echo:    e,
		metrics: middleware.NewMetrics(opts.ServiceName),
	}
	e.HTTPErrorHandler = s.handleError

	middleware.SetupRequestID(e)
	e.Use(echomw.Recover())
	if opts.Tracing {
		e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(opts.ServiceName)))
	}
	middleware.SetupRequestLogger(e)
	e.Use(s.metrics.Middleware())

	e.GET(opts.ContextPath+"/metrics", s.metrics.Handler())
	e.GET(opts.ContextPath+"/docs/*", echoSwagger.WrapHandler)

	s.api = e.Group(opts.ContextPath)
	return s
}

// API is the route group under the context path.
func (s *Server) API() *echo.Group {
	return s.api
}

// Group returns a route group mounted at prefix under the context path.
func (s *Server) Group(prefix string) *echo.Group {
	return s.echo.Group(s.opts.ContextPath + prefix)
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// OnShutdown registers fn to run after the HTTP server stopped. Closers run in reverse order.
func (s *Server) OnShutdown(name string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closers = append(s.closers, closer{name: name, fn: fn})
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info(msg.GetMessage("app.started", s.opts.ServiceName, s.opts.Address))
		if err := s.echo.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	log.Info(msg.GetMessage("app.stop", s.opts.ServiceName))
	shutdownErr := s.Shutdown(context.Background())
	log.Info(msg.GetMessage("app.stopped", s.opts.ServiceName))

	return errors.Join(serveErr, shutdownErr)
}

// Shutdown stops the HTTP server and runs the registered closers within the shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.echo.Shutdown(ctx); err != nil {
		log.Error(msg.GetMessage("app.shutdown-error", "http server", err))
		errs = append(errs, err)
	}

	s.mu.Lock()
	closers := append([]closer(nil), s.closers...)
	s.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].fn(ctx); err != nil {
			log.Error(msg.GetMessage("app.shutdown-error", closers[i].name, err), zap.String("component", closers[i].name))
			errs = append(errs, err)
		}
	}
	log.Sync()
	return errors.Join(errs...)
}
