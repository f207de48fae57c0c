// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"testing"

	"google.golang.org/grpc/connectivity"
)

func TestMonitorPostsEdgesOnly(t *testing.T) {
	c, conn := newTestClient(t, &fakeStub{})

	conn.setState(connectivity.Ready)
	up, ok := nextEvent(t, c).(ConnStateChanged)
	if !ok || !up.Connected {
		t.Fatalf("expected ConnStateChanged{true}, got %+v", up)
	}
	if !c.Connected() {
		t.Error("Connected() = false after up edge")
	}

	// Steady state produces no further events.
	expectNoEvent(t, c, 3*connPollInterval)

	conn.setState(connectivity.TransientFailure)
	down, ok := nextEvent(t, c).(ConnStateChanged)
	if !ok || down.Connected {
		t.Fatalf("expected ConnStateChanged{false}, got %+v", down)
	}
	if c.Connected() {
		t.Error("Connected() = true after down edge")
	}
}

func TestDisconnectPostsDownEdgeWhenConnected(t *testing.T) {
	c, conn := newTestClient(t, &fakeStub{})

	conn.setState(connectivity.Ready)
	if ev, ok := nextEvent(t, c).(ConnStateChanged); !ok || !ev.Connected {
		t.Fatalf("expected up edge, got %+v", ev)
	}

	c.Disconnect()
	if ev, ok := nextEvent(t, c).(ConnStateChanged); !ok || ev.Connected {
		t.Fatalf("expected down edge, got %+v", ev)
	}
}
