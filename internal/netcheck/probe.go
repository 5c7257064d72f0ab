// Package netcheck provides the reachability heuristic used to gate
// refresh sweeps and to explain failures to the user.
package netcheck

import (
	"log/slog"
	"net"
	"time"
)

// Probe dials a well-known external host to decide whether the network
// looks usable. It is a heuristic gate, not a guarantee: false
// positives and negatives are acceptable.
type Probe struct {
	address string
	timeout time.Duration
	logger  *slog.Logger
}

func New(address string, timeout time.Duration, logger *slog.Logger) *Probe {
	return &Probe{
		address: address,
		timeout: timeout,
		logger:  logger.With("component", "netcheck"),
	}
}

// Reachable attempts one short TCP connection with a bounded timeout.
func (p *Probe) Reachable() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		p.logger.Warn("connectivity probe failed", "address", p.address, "error", err)
		return false
	}
	_ = conn.Close()
	return true
}
