// Package server runs the marketplace TCP transport.
//
// It owns the listening socket and the accept loop, fans out one concurrent
// session per accepted connection, and provides the Start/Stop/IsRunning
// lifecycle the surrounding CLI drives, including signal-driven shutdown.
package server
