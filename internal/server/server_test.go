// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/handler"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/protocol"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/store"
)

func newTestServer(t *testing.T) Server {
	t.Helper()

	cfg := config.Storage{
		Files: config.Files{
			SnapshotPath: filepath.Join(t.TempDir(), "snapshot.json"),
		},
	}
	market := store.New(cfg, logger.Nop())
	services := service.NewServices(market, logger.Nop())
	handlers := handler.NewHandlers(services, logger.Nop())

	return NewServer(handlers, logger.Nop())
}

func dial(t *testing.T, srv Server) net.Conn {
	t.Helper()

	addr := srv.Addr()
	require.NotNil(t, addr)

	_, port, err := net.SplitHostPort(addr.String())
	require.NoError(t, err)

	conn, err := net.DialTimeout("tcp", net.JoinHostPort("localhost", port), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// TestServer_ServesSessionsOverTCP starts a real listener on an ephemeral
// port and talks to it the way a remote client would.
func TestServer_ServesSessionsOverTCP(t *testing.T) {
	srv := newTestServer(t)

	require.NoError(t, srv.Start(0))
	t.Cleanup(srv.Stop)
	assert.True(t, srv.IsRunning())

	codec := protocol.NewCodec(dial(t, srv))

	require.NoError(t, codec.WriteRequest(&protocol.Request{
		Cmd:      protocol.CmdRegister,
		Username: "alice",
		Password: "pw",
	}))
	var resp protocol.Response
	require.NoError(t, codec.ReadResponse(&resp))
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Success)

	require.NoError(t, codec.WriteRequest(&protocol.Request{Cmd: protocol.CmdExit}))
}

func TestServer_ConcurrentConnections(t *testing.T) {
	srv := newTestServer(t)

	require.NoError(t, srv.Start(0))
	t.Cleanup(srv.Stop)

	first := protocol.NewCodec(dial(t, srv))
	second := protocol.NewCodec(dial(t, srv))

	// both connections are served at once; neither blocks the other
	for _, step := range []struct {
		codec    *protocol.Codec
		username string
	}{
		{first, "alice"},
		{second, "bob"},
	} {
		require.NoError(t, step.codec.WriteRequest(&protocol.Request{
			Cmd:      protocol.CmdRegister,
			Username: step.username,
			Password: "pw",
		}))
		var resp protocol.Response
		require.NoError(t, step.codec.ReadResponse(&resp))
		require.NotNil(t, resp.Result)
		assert.True(t, resp.Result.Success)
	}
}

func TestServer_StartTwice(t *testing.T) {
	srv := newTestServer(t)

	require.NoError(t, srv.Start(0))
	t.Cleanup(srv.Stop)

	assert.ErrorIs(t, srv.Start(0), errServerAlreadyRunning)
}

func TestServer_StopUnblocksAcceptAndFlipsFlag(t *testing.T) {
	srv := newTestServer(t)

	require.NoError(t, srv.Start(0))
	require.True(t, srv.IsRunning())

	addr := srv.Addr()
	require.NotNil(t, addr)

	srv.Stop()
	assert.False(t, srv.IsRunning())

	// calling Stop again must be safe
	srv.Stop()

	// the listening socket is gone
	_, port, err := net.SplitHostPort(addr.String())
	require.NoError(t, err)
	_, err = net.DialTimeout("tcp", net.JoinHostPort("localhost", port), 200*time.Millisecond)
	assert.Error(t, err)
}

func TestServer_AddrBeforeStart(t *testing.T) {
	srv := newTestServer(t)

	assert.Nil(t, srv.Addr())
	assert.False(t, srv.IsRunning())
}
