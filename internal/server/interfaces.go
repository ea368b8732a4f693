package server

import "net"

// Server is the lifecycle contract the surrounding CLI drives.
//
// Stop is safe to call from a shutdown signal handler; it unblocks the accept
// loop by closing the listening socket. Active client sessions are not
// force-disconnected — they end on their own via the EXIT command or a read
// failure.
type Server interface {
	// Start binds the listening socket on port and spawns the accept loop.
	// It fails only if the port cannot be bound or the server already runs.
	Start(port int) error

	// Stop flips the running flag and closes the listening socket.
	Stop()

	// IsRunning reflects the running flag, not actual socket health.
	IsRunning() bool

	// Run starts the server and blocks until a shutdown signal arrives, then
	// stops it.
	Run(port int) error

	// Addr returns the bound listening address, or nil before Start.
	Addr() net.Addr
}
