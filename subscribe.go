// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/roboinspect/gateway/inspectionpb"
)

// streamKind identifies one subscription slot. At most one stream per kind
// is live; opening a new one replaces the previous.
type streamKind int

const (
	streamSystemState streamKind = iota
	streamInspectionEvents
	streamMediaDownload
)

func (k streamKind) String() string {
	switch k {
	case streamSystemState:
		return "SubscribeSystemState"
	case streamInspectionEvents:
		return "SubscribeInspectionEvents"
	case streamMediaDownload:
		return "DownloadMedia"
	default:
		return "unknown stream"
	}
}

// subscription is one live server stream: its cancel and its join handle.
type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// beginSubscription replaces the stream in slot kind. The previous stream,
// if any, is cancelled and joined before the new reader starts, so events
// from the old and new stream never interleave. Returns false with no
// goroutine started when there is no session.
func (c *Client) beginSubscription(kind streamKind, read func(ctx context.Context, sess *session)) bool {
	sess := c.currentSession()
	if sess == nil {
		return false
	}

	c.mu.Lock()
	prev := c.subs[kind]
	c.mu.Unlock()
	if prev != nil {
		prev.cancel()
		<-prev.done
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub := &subscription{cancel: cancel, done: make(chan struct{})}

	c.mu.Lock()
	c.subs[kind] = sub
	c.mu.Unlock()

	go func() {
		defer close(sub.done)
		defer cancel()
		read(ctx, sess)

		c.mu.Lock()
		if c.subs[kind] == sub {
			delete(c.subs, kind)
		}
		c.mu.Unlock()
	}()
	return true
}

// StopSubscriptions cancels every live stream and waits for their readers
// to exit. Cancellation-driven terminations are silent.
func (c *Client) StopSubscriptions() {
	c.mu.Lock()
	subs := make([]*subscription, 0, len(c.subs))
	for kind, sub := range c.subs {
		subs = append(subs, sub)
		delete(c.subs, kind)
	}
	c.mu.Unlock()

	for _, sub := range subs {
		sub.cancel()
		<-sub.done
	}
}

// streamEnded posts an ErrorOccurred for abnormal stream termination.
// Normal endings are silent: server-side completion (EOF) and local
// cancellation, which covers replacement, StopSubscriptions and
// Disconnect.
func (c *Client) streamEnded(kind streamKind, err error) {
	if err == nil || err == io.EOF || errors.Is(err, context.Canceled) {
		return
	}
	if status.Code(err) == codes.Canceled {
		return
	}
	msg := kind.String() + " ended: " + status.Convert(err).Message()
	c.logger.Warn("stream terminated", "stream", kind, "err", err)
	c.queue.post(ErrorOccurred{Message: msg})
}

// SubscribeSystemState opens the system-state stream for a task. Each
// update arrives as a SystemStateReceived event. Any previous system-state
// stream is replaced.
func (c *Client) SubscribeSystemState(taskID string) {
	req := &inspectionpb.SubscribeRequest{TaskId: taskID, IncludeSnapshot: true}

	ok := c.beginSubscription(streamSystemState, func(ctx context.Context, sess *session) {
		stream, err := sess.stub.SubscribeSystemState(ctx, req)
		if err != nil {
			c.streamEnded(streamSystemState, err)
			return
		}
		for {
			ev, err := stream.Recv()
			if err != nil {
				c.streamEnded(streamSystemState, err)
				return
			}
			c.queue.post(SystemStateReceived{Status: taskStatusFromProto(ev.Status)})
		}
	})
	if !ok {
		c.queue.post(ErrorOccurred{Message: "SubscribeSystemState: " + ErrNotConnected.Error()})
	}
}

// SubscribeInspectionEvents opens the inspection-event stream for a task.
// Each event arrives as an InspectionEventReceived event. Any previous
// inspection-event stream is replaced.
func (c *Client) SubscribeInspectionEvents(taskID string) {
	req := &inspectionpb.SubscribeRequest{TaskId: taskID, IncludeSnapshot: true}

	ok := c.beginSubscription(streamInspectionEvents, func(ctx context.Context, sess *session) {
		stream, err := sess.stub.SubscribeInspectionEvents(ctx, req)
		if err != nil {
			c.streamEnded(streamInspectionEvents, err)
			return
		}
		for {
			ev, err := stream.Recv()
			if err != nil {
				c.streamEnded(streamInspectionEvents, err)
				return
			}
			c.queue.post(InspectionEventReceived{Event: inspectionEventFromProto(ev)})
		}
	})
	if !ok {
		c.queue.post(ErrorOccurred{Message: "SubscribeInspectionEvents: " + ErrNotConnected.Error()})
	}
}

// DownloadMedia streams a media payload and reassembles it. The complete
// payload arrives as a single MediaDownloaded event; an abnormal
// termination discards the partial payload and posts ErrorOccurred
// instead. Any previous download is replaced.
func (c *Client) DownloadMedia(mediaID string) {
	req := &inspectionpb.DownloadMediaRequest{MediaId: mediaID}

	ok := c.beginSubscription(streamMediaDownload, func(ctx context.Context, sess *session) {
		stream, err := sess.stub.DownloadMedia(ctx, req)
		if err != nil {
			c.streamEnded(streamMediaDownload, err)
			return
		}
		var data []byte
		for {
			chunk, err := stream.Recv()
			if err == io.EOF {
				c.queue.post(MediaDownloaded{MediaID: mediaID, Data: data})
				return
			}
			if err != nil {
				c.streamEnded(streamMediaDownload, err)
				return
			}
			data = append(data, chunk.Data...)
			if chunk.Eof {
				c.queue.post(MediaDownloaded{MediaID: mediaID, Data: data})
				return
			}
		}
	})
	if !ok {
		c.queue.post(ErrorOccurred{Message: "DownloadMedia: " + ErrNotConnected.Error()})
	}
}
