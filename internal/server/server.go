package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/x-media-resolver/internal/probe"
	"github.com/orgball2608/x-media-resolver/internal/resolver"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC       fx.Lifecycle
	Config   *config.Config
	Logger   logger.Logger
	Resolver resolver.Client
	Probe    probe.Status `optional:"true"`
}

type Server struct {
	resolver resolver.Client
	probe    probe.Status
	logger   logger.Logger
	srv      *http.Server
}

func New(opts Opts) *Server {
	s := NewHandlerServer(opts.Resolver, opts.Probe, opts.Logger)
	s.srv.Addr = fmt.Sprintf(":%d", opts.Config.App.Port)

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", s.srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
			}
			s.logger.Info(fmt.Sprintf("Starting server on %s", s.srv.Addr))
			go func() {
				if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.logger.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.logger.Info("Shutting down server...")
			return s.srv.Shutdown(ctx)
		},
	})

	return s
}

// NewHandlerServer builds the routes without binding a port.
func NewHandlerServer(r resolver.Client, p probe.Status, log logger.Logger) *Server {
	s := &Server{
		resolver: r,
		probe:    p,
		logger:   log.WithComponent("HTTPServer"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/resolve", s.handleResolve)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.srv = &http.Server{
		Handler:           s.requestLogging(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
