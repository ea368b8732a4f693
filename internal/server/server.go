package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/MKhiriev/go-marketplace/internal/handler"
	"github.com/MKhiriev/go-marketplace/internal/logger"
)

type marketplaceServer struct {
	handlers *handler.Handlers
	logger   *logger.Logger

	running atomic.Bool

	mu       sync.Mutex
	listener net.Listener
}

// NewServer constructs a [Server] that hands every accepted connection to
// handlers.
func NewServer(handlers *handler.Handlers, logger *logger.Logger) Server {
	logger.Info().Msg("creating new server...")
	return &marketplaceServer{
		handlers: handlers,
		logger:   logger,
	}
}

// Start binds the listening socket and spawns the accept loop. A bind failure
// is the only fatal startup condition: the error is returned and the server
// is not running.
func (s *marketplaceServer) Start(port int) error {
	if s.running.Load() {
		return errServerAlreadyRunning
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("could not start server on port %d: %w", port, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.running.Store(true)
	go s.acceptLoop(listener)

	s.logger.Info().Int("port", port).Str("addr", listener.Addr().String()).Msg("server started")

	return nil
}

// acceptLoop blocks on accept and spawns one session goroutine per
// connection. There is no connection limit and no backpressure. An accept
// error after Stop has flipped the running flag is the expected unblocking
// path and exits silently; any other accept error is logged and the loop
// keeps accepting.
func (s *marketplaceServer) acceptLoop(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if !s.running.Load() {
				return
			}
			s.logger.Error().Err(err).Msg("accept failed")
			continue
		}

		go s.handlers.HandleConn(conn)
	}
}

// Stop flips the running flag and closes the listening socket, which unblocks
// the accept loop's pending accept call. Safe to call from a signal handler
// and safe to call more than once.
func (s *marketplaceServer) Stop() {
	s.running.Store(false)

	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener.Close()
	}

	s.logger.Info().Msg("server stopped")
}

// IsRunning reflects the running flag.
func (s *marketplaceServer) IsRunning() bool {
	return s.running.Load()
}

// Addr returns the bound listening address, or nil before Start.
func (s *marketplaceServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Run starts the server and blocks until a stop signal arrives.
func (s *marketplaceServer) Run(port int) error {
	if err := s.Start(port); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	<-ctx.Done()

	s.Stop()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
