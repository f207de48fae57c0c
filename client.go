// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/roboinspect/gateway/inspectionpb"
)

// ErrNotConnected is reported when an operation is issued with no session.
var ErrNotConnected = errors.New("gateway: not connected")

// TracerName is the instrumentation scope consumers should use when
// tracing calls into this package.
const TracerName = "github.com/roboinspect/gateway"

const defaultQueueDepth = 64

// transportConn is the slice of grpc.ClientConn the client needs. Narrowed
// to an interface so tests can substitute a fake channel.
type transportConn interface {
	GetState() connectivity.State
	Connect()
	Close() error
}

// session is the live channel plus the stub bound to it. Owned exclusively
// by the Client; at most one session is live at any time.
type session struct {
	addr string
	conn transportConn
	stub inspectionpb.InspectionGatewayClient
}

type dialFunc func(addr string, opts []grpc.DialOption) (transportConn, inspectionpb.InspectionGatewayClient, error)

func dialGateway(addr string, opts []grpc.DialOption) (transportConn, inspectionpb.InspectionGatewayClient, error) {
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return conn, inspectionpb.NewInspectionGatewayClient(conn), nil
}

// Client drives the InspectionGateway service asynchronously. Public
// methods never perform network I/O on the caller's goroutine: each
// operation is dispatched to its own worker and its outcome comes back as
// exactly one Event on Events().
//
// All methods are safe for concurrent use. Events() is meant to be drained
// by a single consumer loop.
type Client struct {
	logger *log.Logger
	queue  *eventQueue

	creds    credentials.TransportCredentials
	dialOpts []grpc.DialOption
	dial     dialFunc // swapped out by tests

	mu          sync.Mutex
	sess        *session
	subs        map[streamKind]*subscription
	monitorStop chan struct{}
	monitorDone chan struct{}

	workers sync.WaitGroup

	connected atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTransportCredentials overrides the channel credentials. The default
// is a plaintext channel.
func WithTransportCredentials(creds credentials.TransportCredentials) Option {
	return func(c *Client) { c.creds = creds }
}

// WithDialOptions appends extra gRPC dial options (interceptors, stats
// handlers, keepalive) to every Connect.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) { c.dialOpts = append(c.dialOpts, opts...) }
}

// WithQueueDepth sets the buffer of the Events channel.
func WithQueueDepth(depth int) Option {
	return func(c *Client) {
		if depth > 0 {
			c.queue = newEventQueue(depth)
		}
	}
}

// New creates a disconnected Client. Call Connect to bind it to a gateway.
func New(opts ...Option) *Client {
	c := &Client{
		logger: log.New(io.Discard),
		creds:  insecure.NewCredentials(),
		subs:   make(map[streamKind]*subscription),
		dial:   dialGateway,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.queue == nil {
		c.queue = newEventQueue(defaultQueueDepth)
	}
	return c
}

// Events returns the ordered delivery channel. It is closed by Close.
func (c *Client) Events() <-chan Event { return c.queue.out }

// Connected returns the last liveness observation of the monitor.
func (c *Client) Connected() bool { return c.connected.Load() }

// Address returns the current session's target, or "" when disconnected.
func (c *Client) Address() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return ""
	}
	return c.sess.addr
}

// Connect tears down any existing session and binds a new one to addr. No
// network I/O happens here; the channel connects lazily, driven by the
// liveness monitor and by first use.
func (c *Client) Connect(addr string) error {
	c.Disconnect()

	opts := append([]grpc.DialOption{grpc.WithTransportCredentials(c.creds)}, c.dialOpts...)
	conn, stub, err := c.dial(addr, opts)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.sess = &session{addr: addr, conn: conn, stub: stub}
	c.mu.Unlock()

	c.logger.Info("gateway session created", "addr", addr)
	c.startMonitor()
	return nil
}

// Disconnect cancels all subscriptions, stops the monitor, waits for every
// in-flight one-shot worker, and tears down the session. When it returns,
// no worker from this client is still running. Safe to call when already
// disconnected.
func (c *Client) Disconnect() {
	// Clear the session first so operations issued during teardown
	// short-circuit instead of racing the join below.
	c.mu.Lock()
	sess := c.sess
	c.sess = nil
	c.mu.Unlock()

	c.StopSubscriptions()
	c.stopMonitor()
	c.workers.Wait()

	if sess != nil {
		if err := sess.conn.Close(); err != nil {
			c.logger.Warn("closing gateway channel", "err", err)
		}
		c.logger.Info("gateway session closed", "addr", sess.addr)
	}

	if c.connected.Swap(false) {
		c.queue.post(ConnStateChanged{Connected: false})
	}
}

// Close disconnects and shuts down event delivery. Pending events are
// still delivered, then the Events channel is closed.
func (c *Client) Close() {
	c.Disconnect()
	c.queue.close()
}

// currentSession returns the session captured at issuance time. Callers
// keep using the returned pointer even if a concurrent Connect supersedes
// it; the superseded channel stays valid until its own teardown.
func (c *Client) currentSession() *session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}
