// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/roboinspect/gateway/inspectionpb"
)

func stateEvent(phase inspectionpb.TaskPhase) *inspectionpb.SystemStateEvent {
	return &inspectionpb.SystemStateEvent{
		Status: &inspectionpb.TaskStatus{TaskId: "task-1", Phase: phase},
	}
}

func TestSubscribeSystemStateDeliversUpdates(t *testing.T) {
	stub := &fakeStub{
		subscribeState: func(ctx context.Context, in *inspectionpb.SubscribeRequest) (inspectionpb.InspectionGateway_SubscribeSystemStateClient, error) {
			if !in.IncludeSnapshot {
				t.Error("expected snapshot request")
			}
			return &fakeStateStream{
				fakeClientStream: fakeClientStream{ctx: ctx},
				events: []*inspectionpb.SystemStateEvent{
					stateEvent(inspectionpb.TaskPhase_EXECUTING),
					stateEvent(inspectionpb.TaskPhase_COMPLETED),
				},
				final: io.EOF,
			}, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.SubscribeSystemState("task-1")

	first, ok := nextEvent(t, c).(SystemStateReceived)
	if !ok {
		t.Fatal("expected SystemStateReceived")
	}
	if first.Status.Phase != PhaseExecuting {
		t.Errorf("phase = %v, want %v", first.Status.Phase, PhaseExecuting)
	}
	second, ok := nextEvent(t, c).(SystemStateReceived)
	if !ok {
		t.Fatal("expected SystemStateReceived")
	}
	if second.Status.Phase != PhaseCompleted {
		t.Errorf("phase = %v, want %v", second.Status.Phase, PhaseCompleted)
	}

	// EOF is a normal ending, nothing else arrives.
	expectNoEvent(t, c, 100*time.Millisecond)
}

func TestAbnormalStreamEndPostsError(t *testing.T) {
	stub := &fakeStub{
		subscribeState: func(ctx context.Context, _ *inspectionpb.SubscribeRequest) (inspectionpb.InspectionGateway_SubscribeSystemStateClient, error) {
			return &fakeStateStream{
				fakeClientStream: fakeClientStream{ctx: ctx},
				final:            status.Error(codes.Unavailable, "gateway went away"),
			}, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.SubscribeSystemState("task-1")

	occurred, ok := nextEvent(t, c).(ErrorOccurred)
	if !ok {
		t.Fatal("expected ErrorOccurred")
	}
	if !strings.Contains(occurred.Message, "SubscribeSystemState ended") {
		t.Errorf("message = %q", occurred.Message)
	}
	if !strings.Contains(occurred.Message, "gateway went away") {
		t.Errorf("message = %q", occurred.Message)
	}
}

func TestStopSubscriptionsIsSilent(t *testing.T) {
	stub := &fakeStub{
		subscribeState: func(ctx context.Context, _ *inspectionpb.SubscribeRequest) (inspectionpb.InspectionGateway_SubscribeSystemStateClient, error) {
			return &fakeStateStream{
				fakeClientStream: fakeClientStream{ctx: ctx},
				block:            true,
			}, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.SubscribeSystemState("task-1")
	time.Sleep(20 * time.Millisecond)
	c.StopSubscriptions()

	expectNoEvent(t, c, 100*time.Millisecond)
}

func TestSubscriptionReplacementJoinsPreviousReader(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	record := func(what string) {
		mu.Lock()
		order = append(order, what)
		mu.Unlock()
	}

	opened := 0
	stub := &fakeStub{
		subscribeState: func(ctx context.Context, _ *inspectionpb.SubscribeRequest) (inspectionpb.InspectionGateway_SubscribeSystemStateClient, error) {
			opened++
			n := opened
			if n == 1 {
				record("first open")
				return &fakeStateStream{
					fakeClientStream: fakeClientStream{ctx: ctx},
					block:            true,
					onCancel:         func() { record("first cancelled") },
				}, nil
			}
			record("second open")
			return &fakeStateStream{
				fakeClientStream: fakeClientStream{ctx: ctx},
				events:           []*inspectionpb.SystemStateEvent{stateEvent(inspectionpb.TaskPhase_IDLE)},
				final:            io.EOF,
			}, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.SubscribeSystemState("task-1")
	time.Sleep(20 * time.Millisecond)
	c.SubscribeSystemState("task-1")

	if _, ok := nextEvent(t, c).(SystemStateReceived); !ok {
		t.Fatal("expected an update from the replacement stream")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) < 3 || order[0] != "first open" || order[len(order)-1] != "second open" {
		t.Errorf("stream lifecycle out of order: %v", order)
	}
}

func TestSubscribeInspectionEventsDeliversEvents(t *testing.T) {
	stub := &fakeStub{
		subscribeEvents: func(ctx context.Context, _ *inspectionpb.SubscribeRequest) (inspectionpb.InspectionGateway_SubscribeInspectionEventsClient, error) {
			return &fakeEventStream{
				fakeClientStream: fakeClientStream{ctx: ctx},
				events: []*inspectionpb.InspectionEvent{
					{
						TaskId:  "task-1",
						PointId: 4,
						Type:    inspectionpb.InspectionEventType_DEFECT_FOUND,
						Message: "crack on seam",
					},
				},
				final: io.EOF,
			}, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.SubscribeInspectionEvents("task-1")

	rcvd, ok := nextEvent(t, c).(InspectionEventReceived)
	if !ok {
		t.Fatal("expected InspectionEventReceived")
	}
	if rcvd.Event.Type != EventDefectFound || rcvd.Event.PointID != 4 {
		t.Errorf("event = %+v", rcvd.Event)
	}
}

func TestDownloadMediaReassembles(t *testing.T) {
	stub := &fakeStub{
		downloadMedia: func(ctx context.Context, in *inspectionpb.DownloadMediaRequest) (inspectionpb.InspectionGateway_DownloadMediaClient, error) {
			if in.MediaId != "media-3" {
				t.Errorf("media id = %q", in.MediaId)
			}
			return &fakeMediaStream{
				fakeClientStream: fakeClientStream{ctx: ctx},
				chunks: []*inspectionpb.MediaChunk{
					{Data: []byte("jpeg"), ChunkIndex: 0},
					{Data: []byte("data"), ChunkIndex: 1, Eof: true},
				},
			}, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.DownloadMedia("media-3")

	dl, ok := nextEvent(t, c).(MediaDownloaded)
	if !ok {
		t.Fatal("expected MediaDownloaded")
	}
	if dl.MediaID != "media-3" || string(dl.Data) != "jpegdata" {
		t.Errorf("got media=%q data=%q", dl.MediaID, dl.Data)
	}
}

func TestStreamItemsSurviveDisconnect(t *testing.T) {
	stub := &fakeStub{
		subscribeState: func(ctx context.Context, _ *inspectionpb.SubscribeRequest) (inspectionpb.InspectionGateway_SubscribeSystemStateClient, error) {
			events := make([]*inspectionpb.SystemStateEvent, 5)
			for i := range events {
				events[i] = stateEvent(inspectionpb.TaskPhase_EXECUTING)
			}
			return &fakeStateStream{
				fakeClientStream: fakeClientStream{ctx: ctx},
				events:           events,
				block:            true,
			}, nil
		},
	}
	c, _ := newTestClient(t, stub)

	c.SubscribeSystemState("task-1")

	// Let the reader drain the scripted items, then tear everything down.
	time.Sleep(50 * time.Millisecond)
	c.Close()

	got := 0
	for ev := range c.Events() {
		if _, ok := ev.(SystemStateReceived); ok {
			got++
		}
	}
	if got != 5 {
		t.Errorf("received %d state updates, want 5", got)
	}
}
