// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"time"

	"google.golang.org/grpc/connectivity"
)

// connPollInterval is how often the monitor samples channel state.
const connPollInterval = 500 * time.Millisecond

// startMonitor launches the liveness loop for the current session. The
// loop samples channel state on a fixed cadence, nudges an idle channel to
// reconnect, and posts ConnStateChanged only on edges.
func (c *Client) startMonitor() {
	stop := make(chan struct{})
	done := make(chan struct{})
	c.mu.Lock()
	c.monitorStop = stop
	c.monitorDone = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(connPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
			}

			sess := c.currentSession()
			if sess == nil {
				return
			}

			state := sess.conn.GetState()
			up := state == connectivity.Ready
			if state == connectivity.Idle {
				sess.conn.Connect()
			}

			if c.connected.Swap(up) != up {
				c.logger.Info("gateway liveness changed", "addr", sess.addr, "state", state, "connected", up)
				c.queue.post(ConnStateChanged{Connected: up})
			}
		}
	}()
}

// stopMonitor halts the liveness loop and waits for it to exit. Safe to
// call when no monitor is running.
func (c *Client) stopMonitor() {
	c.mu.Lock()
	stop, done := c.monitorStop, c.monitorDone
	c.monitorStop, c.monitorDone = nil, nil
	c.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}
