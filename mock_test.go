// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"context"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/roboinspect/gateway/inspectionpb"
)

// fakeConn stands in for the gRPC channel. It never reaches the network.
type fakeConn struct {
	mu     sync.Mutex
	state  connectivity.State
	closed bool
}

func newFakeConn(state connectivity.State) *fakeConn {
	return &fakeConn{state: state}
}

func (c *fakeConn) GetState() connectivity.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *fakeConn) setState(state connectivity.State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

func (c *fakeConn) Connect() {}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

func errUnimplemented(method string) error {
	return status.Error(codes.Unimplemented, method+" not faked")
}

// fakeStub implements the generated client interface with overridable
// function fields. Methods without an override fail loudly.
type fakeStub struct {
	uploadCad       func(ctx context.Context) (inspectionpb.InspectionGateway_UploadCadClient, error)
	setTargets      func(ctx context.Context, in *inspectionpb.SetInspectionTargetsRequest) (*inspectionpb.SetInspectionTargetsResponse, error)
	planInspection  func(ctx context.Context, in *inspectionpb.PlanInspectionRequest) (*inspectionpb.PlanInspectionResponse, error)
	getPlan         func(ctx context.Context, in *inspectionpb.GetPlanRequest) (*inspectionpb.GetPlanResponse, error)
	startInspection func(ctx context.Context, in *inspectionpb.StartInspectionRequest) (*inspectionpb.StartInspectionResponse, error)
	pause           func(ctx context.Context, in *inspectionpb.ControlTaskRequest) (*inspectionpb.ControlTaskResponse, error)
	resume          func(ctx context.Context, in *inspectionpb.ControlTaskRequest) (*inspectionpb.ControlTaskResponse, error)
	stop            func(ctx context.Context, in *inspectionpb.ControlTaskRequest) (*inspectionpb.ControlTaskResponse, error)
	getTaskStatus   func(ctx context.Context, in *inspectionpb.GetTaskStatusRequest) (*inspectionpb.GetTaskStatusResponse, error)
	subscribeState  func(ctx context.Context, in *inspectionpb.SubscribeRequest) (inspectionpb.InspectionGateway_SubscribeSystemStateClient, error)
	subscribeEvents func(ctx context.Context, in *inspectionpb.SubscribeRequest) (inspectionpb.InspectionGateway_SubscribeInspectionEventsClient, error)
	getNavMap       func(ctx context.Context, in *inspectionpb.GetNavMapRequest) (*inspectionpb.GetNavMapResponse, error)
	listCaptures    func(ctx context.Context, in *inspectionpb.ListCapturesRequest) (*inspectionpb.ListCapturesResponse, error)
	downloadMedia   func(ctx context.Context, in *inspectionpb.DownloadMediaRequest) (inspectionpb.InspectionGateway_DownloadMediaClient, error)
}

func (s *fakeStub) UploadCad(ctx context.Context, _ ...grpc.CallOption) (inspectionpb.InspectionGateway_UploadCadClient, error) {
	if s.uploadCad == nil {
		return nil, errUnimplemented("UploadCad")
	}
	return s.uploadCad(ctx)
}

func (s *fakeStub) SetInspectionTargets(ctx context.Context, in *inspectionpb.SetInspectionTargetsRequest, _ ...grpc.CallOption) (*inspectionpb.SetInspectionTargetsResponse, error) {
	if s.setTargets == nil {
		return nil, errUnimplemented("SetInspectionTargets")
	}
	return s.setTargets(ctx, in)
}

func (s *fakeStub) PlanInspection(ctx context.Context, in *inspectionpb.PlanInspectionRequest, _ ...grpc.CallOption) (*inspectionpb.PlanInspectionResponse, error) {
	if s.planInspection == nil {
		return nil, errUnimplemented("PlanInspection")
	}
	return s.planInspection(ctx, in)
}

func (s *fakeStub) GetPlan(ctx context.Context, in *inspectionpb.GetPlanRequest, _ ...grpc.CallOption) (*inspectionpb.GetPlanResponse, error) {
	if s.getPlan == nil {
		return nil, errUnimplemented("GetPlan")
	}
	return s.getPlan(ctx, in)
}

func (s *fakeStub) StartInspection(ctx context.Context, in *inspectionpb.StartInspectionRequest, _ ...grpc.CallOption) (*inspectionpb.StartInspectionResponse, error) {
	if s.startInspection == nil {
		return nil, errUnimplemented("StartInspection")
	}
	return s.startInspection(ctx, in)
}

func (s *fakeStub) PauseInspection(ctx context.Context, in *inspectionpb.ControlTaskRequest, _ ...grpc.CallOption) (*inspectionpb.ControlTaskResponse, error) {
	if s.pause == nil {
		return nil, errUnimplemented("PauseInspection")
	}
	return s.pause(ctx, in)
}

func (s *fakeStub) ResumeInspection(ctx context.Context, in *inspectionpb.ControlTaskRequest, _ ...grpc.CallOption) (*inspectionpb.ControlTaskResponse, error) {
	if s.resume == nil {
		return nil, errUnimplemented("ResumeInspection")
	}
	return s.resume(ctx, in)
}

func (s *fakeStub) StopInspection(ctx context.Context, in *inspectionpb.ControlTaskRequest, _ ...grpc.CallOption) (*inspectionpb.ControlTaskResponse, error) {
	if s.stop == nil {
		return nil, errUnimplemented("StopInspection")
	}
	return s.stop(ctx, in)
}

func (s *fakeStub) GetTaskStatus(ctx context.Context, in *inspectionpb.GetTaskStatusRequest, _ ...grpc.CallOption) (*inspectionpb.GetTaskStatusResponse, error) {
	if s.getTaskStatus == nil {
		return nil, errUnimplemented("GetTaskStatus")
	}
	return s.getTaskStatus(ctx, in)
}

func (s *fakeStub) SubscribeSystemState(ctx context.Context, in *inspectionpb.SubscribeRequest, _ ...grpc.CallOption) (inspectionpb.InspectionGateway_SubscribeSystemStateClient, error) {
	if s.subscribeState == nil {
		return nil, errUnimplemented("SubscribeSystemState")
	}
	return s.subscribeState(ctx, in)
}

func (s *fakeStub) SubscribeInspectionEvents(ctx context.Context, in *inspectionpb.SubscribeRequest, _ ...grpc.CallOption) (inspectionpb.InspectionGateway_SubscribeInspectionEventsClient, error) {
	if s.subscribeEvents == nil {
		return nil, errUnimplemented("SubscribeInspectionEvents")
	}
	return s.subscribeEvents(ctx, in)
}

func (s *fakeStub) GetNavMap(ctx context.Context, in *inspectionpb.GetNavMapRequest, _ ...grpc.CallOption) (*inspectionpb.GetNavMapResponse, error) {
	if s.getNavMap == nil {
		return nil, errUnimplemented("GetNavMap")
	}
	return s.getNavMap(ctx, in)
}

func (s *fakeStub) ListCaptures(ctx context.Context, in *inspectionpb.ListCapturesRequest, _ ...grpc.CallOption) (*inspectionpb.ListCapturesResponse, error) {
	if s.listCaptures == nil {
		return nil, errUnimplemented("ListCaptures")
	}
	return s.listCaptures(ctx, in)
}

func (s *fakeStub) DownloadMedia(ctx context.Context, in *inspectionpb.DownloadMediaRequest, _ ...grpc.CallOption) (inspectionpb.InspectionGateway_DownloadMediaClient, error) {
	if s.downloadMedia == nil {
		return nil, errUnimplemented("DownloadMedia")
	}
	return s.downloadMedia(ctx, in)
}

// fakeClientStream satisfies the grpc.ClientStream portion of the
// generated stream interfaces. Tests only exercise the typed wrappers.
type fakeClientStream struct {
	ctx context.Context
}

func (fakeClientStream) Header() (metadata.MD, error) { return nil, nil }
func (fakeClientStream) Trailer() metadata.MD         { return nil }
func (fakeClientStream) CloseSend() error             { return nil }
func (s fakeClientStream) Context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}
func (fakeClientStream) SendMsg(any) error { return nil }
func (fakeClientStream) RecvMsg(any) error { return errUnimplemented("RecvMsg") }

// fakeStateStream feeds system-state updates until its script runs out,
// then returns final. A cancelable stream blocks instead and returns the
// context error when the reader is cancelled.
type fakeStateStream struct {
	fakeClientStream
	mu       sync.Mutex
	events   []*inspectionpb.SystemStateEvent
	final    error
	block    bool
	onCancel func()
}

func (s *fakeStateStream) Recv() (*inspectionpb.SystemStateEvent, error) {
	s.mu.Lock()
	if len(s.events) > 0 {
		ev := s.events[0]
		s.events = s.events[1:]
		s.mu.Unlock()
		return ev, nil
	}
	block := s.block
	final := s.final
	s.mu.Unlock()

	if block {
		<-s.Context().Done()
		if s.onCancel != nil {
			s.onCancel()
		}
		return nil, status.Error(codes.Canceled, "stream cancelled")
	}
	return nil, final
}

type fakeEventStream struct {
	fakeClientStream
	mu     sync.Mutex
	events []*inspectionpb.InspectionEvent
	final  error
}

func (s *fakeEventStream) Recv() (*inspectionpb.InspectionEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) > 0 {
		ev := s.events[0]
		s.events = s.events[1:]
		return ev, nil
	}
	return nil, s.final
}

type fakeMediaStream struct {
	fakeClientStream
	mu     sync.Mutex
	chunks []*inspectionpb.MediaChunk
	final  error
}

func (s *fakeMediaStream) Recv() (*inspectionpb.MediaChunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.chunks) > 0 {
		chunk := s.chunks[0]
		s.chunks = s.chunks[1:]
		return chunk, nil
	}
	return nil, s.final
}

// fakeUploadStream records sent chunks and answers CloseAndRecv with a
// scripted response.
type fakeUploadStream struct {
	fakeClientStream
	mu      sync.Mutex
	chunks  []*inspectionpb.UploadCadChunk
	resp    *inspectionpb.UploadCadResponse
	respErr error
	sendErr error
}

func (s *fakeUploadStream) Send(chunk *inspectionpb.UploadCadChunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.chunks = append(s.chunks, chunk)
	return nil
}

func (s *fakeUploadStream) CloseAndRecv() (*inspectionpb.UploadCadResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resp, s.respErr
}

func (s *fakeUploadStream) sent() []*inspectionpb.UploadCadChunk {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*inspectionpb.UploadCadChunk(nil), s.chunks...)
}

// newTestClient wires a Client to the fake stub. The fake channel starts
// in Connecting so the liveness monitor stays quiet during short tests.
func newTestClient(t *testing.T, stub *fakeStub) (*Client, *fakeConn) {
	t.Helper()
	conn := newFakeConn(connectivity.Connecting)
	c := New()
	c.dial = func(string, []grpc.DialOption) (transportConn, inspectionpb.InspectionGatewayClient, error) {
		return conn, stub, nil
	}
	if err := c.Connect("fake:0"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(c.Close)
	return c, conn
}

// nextEvent fails the test when no event arrives in time.
func nextEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case ev, ok := <-c.Events():
		if !ok {
			t.Fatal("event channel closed")
		}
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return nil
}

// expectNoEvent asserts that nothing is delivered within the window.
func expectNoEvent(t *testing.T, c *Client, window time.Duration) {
	t.Helper()
	select {
	case ev := <-c.Events():
		t.Fatalf("unexpected event %T: %+v", ev, ev)
	case <-time.After(window):
	}
}
