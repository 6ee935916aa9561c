package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	authH "github.com/fekuna/omnipos-warehouse-service/internal/auth/handler"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router, mw *middleware.Middleware)
}

type Config struct {
	HTTPAddr        string
	GRPCAddr        string // empty disables the gRPC health server
	ShutdownTimeout time.Duration
}

type Server struct {
	cfg        Config
	mw         *middleware.Middleware
	auth       *authH.AuthHandler
	routes     []RouteRegistrar
	background []func(ctx context.Context) error
	logger     logger.ZapLogger

	health *health.Server
}

func NewServer(cfg Config, mw *middleware.Middleware, auth *authH.AuthHandler, routes []RouteRegistrar, log logger.ZapLogger) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 20 * time.Second
	}
	return &Server{
		cfg:    cfg,
		mw:     mw,
		auth:   auth,
		routes: routes,
		logger: log,
		health: health.NewServer(),
	}
}

// Go registers a worker that runs alongside the servers until shutdown.
func (s *Server) Go(fn func(ctx context.Context) error) {
	s.background = append(s.background, fn)
}

func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	// /products/ -> /products
	router.Use(chimiddleware.StripSlashes)
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(s.mw.RequestLogger)

	router.Mount("/api/v1", s.v1Router())
	return router
}

func (s *Server) v1Router() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = handlerutils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.auth.RegisterPublicRoutes(r, s.mw)

	r.Group(func(r chi.Router) {
		r.Use(s.mw.Authenticate)
		s.auth.RegisterRoutes(r, s.mw)
		for _, h := range s.routes {
			h.RegisterRoutes(r, s.mw)
		}
	})

	return r
}

// Run serves HTTP and gRPC until ctx is cancelled or one of them fails,
// then shuts everything down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              normalizeAddr(s.cfg.HTTPAddr),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var grpcSrv *grpc.Server
	if s.cfg.GRPCAddr != "" {
		grpcSrv = grpc.NewServer()
		healthpb.RegisterHealthServer(grpcSrv, s.health)
		reflection.Register(grpcSrv)
	}

	errGrp, ctx := errgroup.WithContext(ctx)

	errGrp.Go(func() error {
		s.logger.Info("starting http server", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if grpcSrv != nil {
		errGrp.Go(func() error {
			lis, err := net.Listen("tcp", normalizeAddr(s.cfg.GRPCAddr))
			if err != nil {
				return fmt.Errorf("grpc listen: %w", err)
			}
			s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
			s.logger.Info("starting grpc health server", zap.String("addr", lis.Addr().String()))
			if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("grpc server: %w", err)
			}
			return nil
		})
	}

	for _, fn := range s.background {
		fn := fn
		errGrp.Go(func() error { return fn(ctx) })
	}

	errGrp.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if grpcSrv != nil {
			s.health.Shutdown()
			grpcSrv.GracefulStop()
		}
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server failed to shut down gracefully: %w", err)
		}
		return nil
	})

	return errGrp.Wait()
}

func normalizeAddr(addr string) string {
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
