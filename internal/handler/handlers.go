package handler

import (
	"context"
	"net"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/protocol"
	"github.com/MKhiriev/go-marketplace/internal/service"
)

// Handlers is the root transport handler.
//
// It stores references to the service layer and structured logger so that
// per-connection sessions can delegate business logic and emit consistent
// logs. A Handlers instance is created once at startup and shared by the
// connection acceptor.
type Handlers struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for connection-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandlers constructs a [Handlers] with the provided service container and
// logger, and returns the initialized instance.
func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Debug().Msg("session handlers created")
	return &Handlers{
		services: services,
		logger:   logger,
	}
}

// HandleConn runs one client session over conn and blocks until the session
// ends (EXIT command, disconnect, or decode failure). The connection is
// always closed on return. Each session gets a child logger carrying a
// generated connection id and the peer address, attached to the context so
// the service layer logs with the same fields.
func (h *Handlers) HandleConn(conn net.Conn) {
	defer conn.Close()

	log := &logger.Logger{Logger: h.logger.With().
		Str("conn_id", newConnID()).
		Str("remote_addr", conn.RemoteAddr().String()).
		Logger()}

	s := newSession(protocol.NewCodec(conn), h.services, log)
	s.run(log.WithContext(context.Background()))
}

// newConnID generates a sortable unique id for one connection's log stream.
func newConnID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
