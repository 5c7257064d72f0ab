package netcheck

import (
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestReachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	probe := New(ln.Addr().String(), time.Second, testLogger())
	assert.True(t, probe.Reachable())
}

func TestReachableRefusedConnection(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	probe := New(addr, time.Second, testLogger())
	assert.False(t, probe.Reachable())
}

func TestReachableBoundedByTimeout(t *testing.T) {
	// unroutable TEST-NET-1 address: the dial can only end by timeout
	probe := New("192.0.2.1:80", 100*time.Millisecond, testLogger())

	start := time.Now()
	reachable := probe.Reachable()

	assert.False(t, reachable)
	assert.Less(t, time.Since(start), 3*time.Second)
}
