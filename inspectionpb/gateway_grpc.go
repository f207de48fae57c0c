// Copyright (C) 2025-2026, RoboInspect, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package inspectionpb

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names for the InspectionGateway service.
const (
	InspectionGateway_UploadCad_FullMethodName                 = "/inspection.gateway.v1.InspectionGateway/UploadCad"
	InspectionGateway_SetInspectionTargets_FullMethodName      = "/inspection.gateway.v1.InspectionGateway/SetInspectionTargets"
	InspectionGateway_PlanInspection_FullMethodName            = "/inspection.gateway.v1.InspectionGateway/PlanInspection"
	InspectionGateway_GetPlan_FullMethodName                   = "/inspection.gateway.v1.InspectionGateway/GetPlan"
	InspectionGateway_StartInspection_FullMethodName           = "/inspection.gateway.v1.InspectionGateway/StartInspection"
	InspectionGateway_PauseInspection_FullMethodName           = "/inspection.gateway.v1.InspectionGateway/PauseInspection"
	InspectionGateway_ResumeInspection_FullMethodName          = "/inspection.gateway.v1.InspectionGateway/ResumeInspection"
	InspectionGateway_StopInspection_FullMethodName            = "/inspection.gateway.v1.InspectionGateway/StopInspection"
	InspectionGateway_GetTaskStatus_FullMethodName             = "/inspection.gateway.v1.InspectionGateway/GetTaskStatus"
	InspectionGateway_SubscribeSystemState_FullMethodName      = "/inspection.gateway.v1.InspectionGateway/SubscribeSystemState"
	InspectionGateway_SubscribeInspectionEvents_FullMethodName = "/inspection.gateway.v1.InspectionGateway/SubscribeInspectionEvents"
	InspectionGateway_GetNavMap_FullMethodName                 = "/inspection.gateway.v1.InspectionGateway/GetNavMap"
	InspectionGateway_ListCaptures_FullMethodName              = "/inspection.gateway.v1.InspectionGateway/ListCaptures"
	InspectionGateway_DownloadMedia_FullMethodName             = "/inspection.gateway.v1.InspectionGateway/DownloadMedia"
)

// InspectionGatewayClient is the client API for the InspectionGateway service.
type InspectionGatewayClient interface {
	UploadCad(ctx context.Context, opts ...grpc.CallOption) (InspectionGateway_UploadCadClient, error)
	SetInspectionTargets(ctx context.Context, in *SetInspectionTargetsRequest, opts ...grpc.CallOption) (*SetInspectionTargetsResponse, error)
	PlanInspection(ctx context.Context, in *PlanInspectionRequest, opts ...grpc.CallOption) (*PlanInspectionResponse, error)
	GetPlan(ctx context.Context, in *GetPlanRequest, opts ...grpc.CallOption) (*GetPlanResponse, error)
	StartInspection(ctx context.Context, in *StartInspectionRequest, opts ...grpc.CallOption) (*StartInspectionResponse, error)
	PauseInspection(ctx context.Context, in *ControlTaskRequest, opts ...grpc.CallOption) (*ControlTaskResponse, error)
	ResumeInspection(ctx context.Context, in *ControlTaskRequest, opts ...grpc.CallOption) (*ControlTaskResponse, error)
	StopInspection(ctx context.Context, in *ControlTaskRequest, opts ...grpc.CallOption) (*ControlTaskResponse, error)
	GetTaskStatus(ctx context.Context, in *GetTaskStatusRequest, opts ...grpc.CallOption) (*GetTaskStatusResponse, error)
	SubscribeSystemState(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (InspectionGateway_SubscribeSystemStateClient, error)
	SubscribeInspectionEvents(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (InspectionGateway_SubscribeInspectionEventsClient, error)
	GetNavMap(ctx context.Context, in *GetNavMapRequest, opts ...grpc.CallOption) (*GetNavMapResponse, error)
	ListCaptures(ctx context.Context, in *ListCapturesRequest, opts ...grpc.CallOption) (*ListCapturesResponse, error)
	DownloadMedia(ctx context.Context, in *DownloadMediaRequest, opts ...grpc.CallOption) (InspectionGateway_DownloadMediaClient, error)
}

type inspectionGatewayClient struct {
	cc grpc.ClientConnInterface
}

// NewInspectionGatewayClient binds the service to a gRPC channel.
func NewInspectionGatewayClient(cc grpc.ClientConnInterface) InspectionGatewayClient {
	return &inspectionGatewayClient{cc}
}

// Stream descriptors. Server-side handlers live in the gateway, not here.
var (
	uploadCadStreamDesc = grpc.StreamDesc{
		StreamName:    "UploadCad",
		ClientStreams: true,
	}
	subscribeSystemStateStreamDesc = grpc.StreamDesc{
		StreamName:    "SubscribeSystemState",
		ServerStreams: true,
	}
	subscribeInspectionEventsStreamDesc = grpc.StreamDesc{
		StreamName:    "SubscribeInspectionEvents",
		ServerStreams: true,
	}
	downloadMediaStreamDesc = grpc.StreamDesc{
		StreamName:    "DownloadMedia",
		ServerStreams: true,
	}
)

func (c *inspectionGatewayClient) UploadCad(ctx context.Context, opts ...grpc.CallOption) (InspectionGateway_UploadCadClient, error) {
	stream, err := c.cc.NewStream(ctx, &uploadCadStreamDesc, InspectionGateway_UploadCad_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &inspectionGatewayUploadCadClient{ClientStream: stream}, nil
}

type InspectionGateway_UploadCadClient interface {
	Send(*UploadCadChunk) error
	CloseAndRecv() (*UploadCadResponse, error)
	grpc.ClientStream
}

type inspectionGatewayUploadCadClient struct {
	grpc.ClientStream
}

func (x *inspectionGatewayUploadCadClient) Send(m *UploadCadChunk) error {
	return x.ClientStream.SendMsg(m)
}

func (x *inspectionGatewayUploadCadClient) CloseAndRecv() (*UploadCadResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(UploadCadResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *inspectionGatewayClient) SetInspectionTargets(ctx context.Context, in *SetInspectionTargetsRequest, opts ...grpc.CallOption) (*SetInspectionTargetsResponse, error) {
	out := new(SetInspectionTargetsResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_SetInspectionTargets_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) PlanInspection(ctx context.Context, in *PlanInspectionRequest, opts ...grpc.CallOption) (*PlanInspectionResponse, error) {
	out := new(PlanInspectionResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_PlanInspection_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) GetPlan(ctx context.Context, in *GetPlanRequest, opts ...grpc.CallOption) (*GetPlanResponse, error) {
	out := new(GetPlanResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_GetPlan_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) StartInspection(ctx context.Context, in *StartInspectionRequest, opts ...grpc.CallOption) (*StartInspectionResponse, error) {
	out := new(StartInspectionResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_StartInspection_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) PauseInspection(ctx context.Context, in *ControlTaskRequest, opts ...grpc.CallOption) (*ControlTaskResponse, error) {
	out := new(ControlTaskResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_PauseInspection_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) ResumeInspection(ctx context.Context, in *ControlTaskRequest, opts ...grpc.CallOption) (*ControlTaskResponse, error) {
	out := new(ControlTaskResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_ResumeInspection_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) StopInspection(ctx context.Context, in *ControlTaskRequest, opts ...grpc.CallOption) (*ControlTaskResponse, error) {
	out := new(ControlTaskResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_StopInspection_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) GetTaskStatus(ctx context.Context, in *GetTaskStatusRequest, opts ...grpc.CallOption) (*GetTaskStatusResponse, error) {
	out := new(GetTaskStatusResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_GetTaskStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) SubscribeSystemState(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (InspectionGateway_SubscribeSystemStateClient, error) {
	stream, err := c.cc.NewStream(ctx, &subscribeSystemStateStreamDesc, InspectionGateway_SubscribeSystemState_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &inspectionGatewaySubscribeSystemStateClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type InspectionGateway_SubscribeSystemStateClient interface {
	Recv() (*SystemStateEvent, error)
	grpc.ClientStream
}

type inspectionGatewaySubscribeSystemStateClient struct {
	grpc.ClientStream
}

func (x *inspectionGatewaySubscribeSystemStateClient) Recv() (*SystemStateEvent, error) {
	m := new(SystemStateEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *inspectionGatewayClient) SubscribeInspectionEvents(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (InspectionGateway_SubscribeInspectionEventsClient, error) {
	stream, err := c.cc.NewStream(ctx, &subscribeInspectionEventsStreamDesc, InspectionGateway_SubscribeInspectionEvents_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &inspectionGatewaySubscribeInspectionEventsClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type InspectionGateway_SubscribeInspectionEventsClient interface {
	Recv() (*InspectionEvent, error)
	grpc.ClientStream
}

type inspectionGatewaySubscribeInspectionEventsClient struct {
	grpc.ClientStream
}

func (x *inspectionGatewaySubscribeInspectionEventsClient) Recv() (*InspectionEvent, error) {
	m := new(InspectionEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *inspectionGatewayClient) GetNavMap(ctx context.Context, in *GetNavMapRequest, opts ...grpc.CallOption) (*GetNavMapResponse, error) {
	out := new(GetNavMapResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_GetNavMap_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) ListCaptures(ctx context.Context, in *ListCapturesRequest, opts ...grpc.CallOption) (*ListCapturesResponse, error) {
	out := new(ListCapturesResponse)
	if err := c.cc.Invoke(ctx, InspectionGateway_ListCaptures_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inspectionGatewayClient) DownloadMedia(ctx context.Context, in *DownloadMediaRequest, opts ...grpc.CallOption) (InspectionGateway_DownloadMediaClient, error) {
	stream, err := c.cc.NewStream(ctx, &downloadMediaStreamDesc, InspectionGateway_DownloadMedia_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &inspectionGatewayDownloadMediaClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type InspectionGateway_DownloadMediaClient interface {
	Recv() (*MediaChunk, error)
	grpc.ClientStream
}

type inspectionGatewayDownloadMediaClient struct {
	grpc.ClientStream
}

func (x *inspectionGatewayDownloadMediaClient) Recv() (*MediaChunk, error) {
	m := new(MediaChunk)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
