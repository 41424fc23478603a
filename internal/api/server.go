package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmossdk.io/log"
)

// DefaultShutdownTimeout bounds graceful shutdown. It exceeds the default
// submit timeout so in-flight submissions can report their outcome.
const DefaultShutdownTimeout = 90 * time.Second

// Server runs the API on a TCP listener.
type Server struct {
	addr            string
	httpServer      *http.Server
	listener        net.Listener
	logger          log.Logger
	shutdownTimeout time.Duration
}

// NewServer creates a server for handler on addr.
func NewServer(addr string, handler http.Handler, logger log.Logger) *Server {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Server{
		addr: addr,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// Addr returns the bound address once Listen has been called, and the
// configured address before.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Listen binds the listener without serving.
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	return nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	s.logger.Info("api server started", "addr", s.Addr())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, shutting down")
	case sig := <-sigCh:
		s.logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", "error", err.Error())
			return err
		}
		return nil
	}
	return s.Shutdown()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down api server: %w", err)
	}
	s.logger.Info("api server stopped")
	return nil
}
